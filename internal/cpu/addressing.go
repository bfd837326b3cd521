package cpu

// AddressingMode identifies one of the thirteen 6502 addressing modes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	zeroPageMask = 0x00FF
	pageMask     = 0xFF00
)

// resolveAddress evaluates the addressing mode for the instruction at the
// current PC, advancing PC past every operand byte it consumes, and
// reports whether the effective address crossed a page boundary. The
// cross flag is a return value rather than CPU state (see mode/dispatch
// split in the decode table), and it is consulted by the caller only for
// instructions marked page-cross-sensitive.
func (c *CPU) resolveAddress(bus Bus, mode AddressingMode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		c.PC++
		return 0, false

	case Immediate:
		addr = c.PC + 1
		c.PC += 2
		return addr, false

	case ZeroPage:
		addr = uint16(bus.Read(c.PC + 1))
		c.PC += 2
		return addr, false

	case ZeroPageX:
		base := bus.Read(c.PC + 1)
		addr = uint16((base + c.X) & zeroPageMask)
		c.PC += 2
		return addr, false

	case ZeroPageY:
		base := bus.Read(c.PC + 1)
		addr = uint16((base + c.Y) & zeroPageMask)
		c.PC += 2
		return addr, false

	case Relative:
		offset := int8(bus.Read(c.PC + 1))
		oldPC := c.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		c.PC = oldPC
		pageCrossed = oldPC&pageMask != newPC&pageMask
		return newPC, pageCrossed

	case Absolute:
		lo := uint16(bus.Read(c.PC + 1))
		hi := uint16(bus.Read(c.PC + 2))
		addr = hi<<8 | lo
		c.PC += 3
		return addr, false

	case AbsoluteX:
		lo := uint16(bus.Read(c.PC + 1))
		hi := uint16(bus.Read(c.PC + 2))
		base := hi<<8 | lo
		addr = base + uint16(c.X)
		c.PC += 3
		pageCrossed = base&pageMask != addr&pageMask
		return addr, pageCrossed

	case AbsoluteY:
		lo := uint16(bus.Read(c.PC + 1))
		hi := uint16(bus.Read(c.PC + 2))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		c.PC += 3
		pageCrossed = base&pageMask != addr&pageMask
		return addr, pageCrossed

	case Indirect: // JMP only
		loPtr := uint16(bus.Read(c.PC + 1))
		hiPtr := uint16(bus.Read(c.PC + 2))
		ptr := hiPtr<<8 | loPtr

		var lo, hi uint16
		lo = uint16(bus.Read(ptr))
		if ptr&zeroPageMask == zeroPageMask {
			// Page-wrap bug: the high byte is fetched from the start
			// of the same page instead of crossing into the next one.
			hi = uint16(bus.Read(ptr & pageMask))
		} else {
			hi = uint16(bus.Read(ptr + 1))
		}
		c.PC += 3
		return hi<<8 | lo, false

	case IndexedIndirect: // (zp,X)
		base := bus.Read(c.PC + 1)
		ptr := (base + c.X) & zeroPageMask
		lo := uint16(bus.Read(uint16(ptr)))
		hi := uint16(bus.Read(uint16((ptr + 1) & zeroPageMask)))
		c.PC += 2
		return hi<<8 | lo, false

	case IndirectIndexed: // (zp),Y
		ptr := uint16(bus.Read(c.PC + 1))
		lo := uint16(bus.Read(ptr))
		hi := uint16(bus.Read((ptr + 1) & zeroPageMask))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		c.PC += 2
		pageCrossed = base&pageMask != addr&pageMask
		return addr, pageCrossed

	default:
		return 0, false
	}
}
