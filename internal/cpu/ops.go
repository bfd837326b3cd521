package cpu

// execute applies the semantic effect of a decoded operation and returns
// any extra cycles the operation itself charges (currently only taken
// branches do this; the page-cross surcharge is applied by the caller).
func (c *CPU) execute(bus Bus, desc Descriptor, addr uint16, pageCrossed bool) uint8 {
	switch desc.Op {
	case opLDA:
		c.A = bus.Read(addr)
		c.setZN(c.A)
	case opLDX:
		c.X = bus.Read(addr)
		c.setZN(c.X)
	case opLDY:
		c.Y = bus.Read(addr)
		c.setZN(c.Y)
	case opSTA:
		bus.Write(addr, c.A)
	case opSTX:
		bus.Write(addr, c.X)
	case opSTY:
		bus.Write(addr, c.Y)

	case opTAX:
		c.X = c.A
		c.setZN(c.X)
	case opTAY:
		c.Y = c.A
		c.setZN(c.Y)
	case opTXA:
		c.A = c.X
		c.setZN(c.A)
	case opTYA:
		c.A = c.Y
		c.setZN(c.A)
	case opTSX:
		c.X = c.SP
		c.setZN(c.X)
	case opTXS:
		c.SP = c.X // sole transfer with no flag effect

	case opPHA:
		c.push(bus, c.A)
	case opPLA:
		c.A = c.pop(bus)
		c.setZN(c.A)
	case opPHP:
		c.push(bus, c.StatusByte()|bFlagMask)
	case opPLP:
		status := c.pop(bus)
		c.SetStatusByte(status)
		c.B = false // B is never physically stored; the pulled bit is discarded

	case opADC:
		c.adc(bus.Read(addr))
	case opSBC:
		c.adc(bus.Read(addr) ^ 0xFF)

	case opCMP:
		c.compare(c.A, bus.Read(addr))
	case opCPX:
		c.compare(c.X, bus.Read(addr))
	case opCPY:
		c.compare(c.Y, bus.Read(addr))

	case opAND:
		c.A &= bus.Read(addr)
		c.setZN(c.A)
	case opORA:
		c.A |= bus.Read(addr)
		c.setZN(c.A)
	case opEOR:
		c.A ^= bus.Read(addr)
		c.setZN(c.A)
	case opBIT:
		m := bus.Read(addr)
		c.N = m&nFlagMask != 0
		c.V = m&vFlagMask != 0
		c.Z = c.A&m == 0

	case opASLAcc:
		c.C = c.A&0x80 != 0
		c.A <<= 1
		c.setZN(c.A)
	case opASL:
		v := bus.Read(addr)
		c.C = v&0x80 != 0
		v <<= 1
		bus.Write(addr, v)
		c.setZN(v)
	case opLSRAcc:
		c.C = c.A&0x01 != 0
		c.A >>= 1
		c.setZN(c.A)
	case opLSR:
		v := bus.Read(addr)
		c.C = v&0x01 != 0
		v >>= 1
		bus.Write(addr, v)
		c.setZN(v)
	case opROLAcc:
		oldC := c.C
		c.C = c.A&0x80 != 0
		c.A <<= 1
		if oldC {
			c.A |= 0x01
		}
		c.setZN(c.A)
	case opROL:
		v := bus.Read(addr)
		oldC := c.C
		c.C = v&0x80 != 0
		v <<= 1
		if oldC {
			v |= 0x01
		}
		bus.Write(addr, v)
		c.setZN(v)
	case opRORAcc:
		oldC := c.C
		c.C = c.A&0x01 != 0
		c.A >>= 1
		if oldC {
			c.A |= 0x80
		}
		c.setZN(c.A)
	case opROR:
		v := bus.Read(addr)
		oldC := c.C
		c.C = v&0x01 != 0
		v >>= 1
		if oldC {
			v |= 0x80
		}
		bus.Write(addr, v)
		c.setZN(v)

	case opINC:
		v := bus.Read(addr) + 1
		bus.Write(addr, v)
		c.setZN(v)
	case opDEC:
		v := bus.Read(addr) - 1
		bus.Write(addr, v)
		c.setZN(v)
	case opINX:
		c.X++
		c.setZN(c.X)
	case opINY:
		c.Y++
		c.setZN(c.Y)
	case opDEX:
		c.X--
		c.setZN(c.X)
	case opDEY:
		c.Y--
		c.setZN(c.Y)

	case opBCC:
		return c.branch(!c.C, addr, pageCrossed)
	case opBCS:
		return c.branch(c.C, addr, pageCrossed)
	case opBEQ:
		return c.branch(c.Z, addr, pageCrossed)
	case opBNE:
		return c.branch(!c.Z, addr, pageCrossed)
	case opBMI:
		return c.branch(c.N, addr, pageCrossed)
	case opBPL:
		return c.branch(!c.N, addr, pageCrossed)
	case opBVS:
		return c.branch(c.V, addr, pageCrossed)
	case opBVC:
		return c.branch(!c.V, addr, pageCrossed)

	case opJMP, opJMPIndirect:
		c.PC = addr
	case opJSR:
		c.pushWord(bus, c.PC-1)
		c.PC = addr
	case opRTS:
		c.PC = c.popWord(bus) + 1
	case opBRK:
		c.PC++ // padding byte
		c.pushWord(bus, c.PC)
		c.push(bus, c.StatusByte()|bFlagMask)
		c.I = true
		c.PC = c.readVector(bus, irqVector)
	case opRTI:
		status := c.pop(bus)
		c.SetStatusByte(status)
		c.B = false
		c.PC = c.popWord(bus)

	case opCLC:
		c.C = false
	case opSEC:
		c.C = true
	case opCLI:
		c.I = false
	case opSEI:
		c.I = true
	case opCLD:
		c.D = false
	case opSED:
		c.D = true
	case opCLV:
		c.V = false

	case opNOP:
		// no effect
	}
	return 0
}

// adc implements ADC; SBC is ADC with the memory operand's bits inverted,
// which turns subtraction into addition with the same carry/overflow math.
func (c *CPU) adc(m uint8) {
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	c.V = (uint16(c.A)^sum)&(uint16(m)^sum)&0x80 != 0
	c.C = sum > 0xFF
	c.A = uint8(sum)
	c.setZN(c.A)
}

// compare implements CMP/CPX/CPY: an 8-bit subtraction that never writes
// back and never touches V.
func (c *CPU) compare(reg, m uint8) {
	result := reg - m
	c.C = reg >= m
	c.setZN(result)
}

// branch applies a branch's cycle penalty: +1 if taken, +1 more if the
// taken branch crosses a page. Predicate, not-taken cost, is handled by
// the decode table's base cycle count.
func (c *CPU) branch(take bool, target uint16, pageCrossed bool) uint8 {
	if !take {
		return 0
	}
	c.PC = target
	if pageCrossed {
		return 2
	}
	return 1
}
