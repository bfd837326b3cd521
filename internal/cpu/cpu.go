package cpu

import "fmt"

// Interrupt vectors.
const (
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Bus is the memory interface the CPU reads and writes through. The CPU
// never stores a Bus; one is passed into every Clock call, which keeps
// CPU and bus free of a back-reference cycle (the Machine aggregate owns
// both and lends the bus to the CPU only for the duration of a tick).
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// UnknownOpcodeError is the one fatal condition this interpreter raises:
// an opcode byte with no decode table entry. Real hardware would execute
// an unofficial opcode; this emulator does not implement the unofficial
// set and halts instead.
type UnknownOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode $%02X at $%04X", e.Opcode, e.PC)
}

// CPU is the MOS 6502 interpreter: register file plus a per-tick clock
// driven fetch/decode/execute loop.
type CPU struct {
	Registers

	remaining uint8 // cycles left in the instruction currently executing
	halted    bool
	haltErr   error

	nmiPending bool
	irqLine    bool
}

// New returns a CPU in its power-up state. PC is left at zero until Reset
// reads the reset vector; a freshly constructed CPU is not runnable until
// Reset is called, matching real hardware.
func New() *CPU {
	c := &CPU{}
	c.SP = 0xFF
	c.B = true
	return c
}

// Reset performs the 6502 reset sequence: registers to their power-up
// state and PC loaded from the reset vector. The remaining-cycles counter
// is left at zero so the next Clock call fetches fresh.
func (c *CPU) Reset(bus Bus) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.C, c.Z, c.V, c.N, c.D = false, false, false, false, false
	c.B = true
	c.I = true
	c.remaining = 0
	c.halted = false
	c.haltErr = nil
	c.nmiPending = false
	c.irqLine = false
	c.PC = c.readVector(bus, resetVector)
}

// Halted reports whether the CPU hit an unknown opcode and stopped.
func (c *CPU) Halted() bool { return c.halted }

// Err returns the fatal error that halted the CPU, if any.
func (c *CPU) Err() error { return c.haltErr }

// RemainingCycles exposes the in-flight instruction's remaining tick
// count; it reads zero exactly at instruction boundaries.
func (c *CPU) RemainingCycles() uint8 { return c.remaining }

// TriggerNMI latches a pending non-maskable interrupt. NMI is edge
// triggered and cannot be masked by I.
func (c *CPU) TriggerNMI() { c.nmiPending = true }

// SetIRQ drives the level-triggered IRQ line.
func (c *CPU) SetIRQ(asserted bool) { c.irqLine = asserted }

// Clock advances the CPU by exactly one master cycle. When the previous
// instruction has fully retired it dispatches a pending interrupt, or
// fetches, decodes and executes the next instruction; either way it then
// burns one cycle off whatever is now in flight. This is the only entry
// point the host calls, once per tick.
func (c *CPU) Clock(bus Bus) error {
	if c.halted {
		return c.haltErr
	}
	if c.remaining == 0 {
		switch {
		case c.nmiPending:
			c.nmiPending = false
			c.dispatchInterrupt(bus, nmiVector)
			c.remaining = 7
		case c.irqLine && !c.I:
			c.dispatchInterrupt(bus, irqVector)
			c.remaining = 7
		default:
			cycles, err := c.stepInstruction(bus)
			if err != nil {
				c.halted = true
				c.haltErr = err
				return err
			}
			c.remaining = cycles
		}
	}
	c.remaining--
	return nil
}

// StepInstruction ticks the CPU until the current instruction retires,
// the debugger's definition of a single step.
func (c *CPU) StepInstruction(bus Bus) error {
	if err := c.Clock(bus); err != nil {
		return err
	}
	for c.remaining != 0 {
		if err := c.Clock(bus); err != nil {
			return err
		}
	}
	return nil
}

// stepInstruction fetches one opcode, resolves its addressing mode,
// executes it, and returns the total cycle cost: the decode table's base
// cost plus any page-cross or taken-branch surcharge.
func (c *CPU) stepInstruction(bus Bus) (uint8, error) {
	pc := c.PC
	opcode := bus.Read(c.PC)
	desc := decodeTable[opcode]
	if desc.BaseCycles == 0 {
		return 0, &UnknownOpcodeError{PC: pc, Opcode: opcode}
	}

	addr, pageCrossed := c.resolveAddress(bus, desc.Mode)
	extra := c.execute(bus, desc, addr, pageCrossed)

	// Only descriptors marked cross-sensitive (the pure indexed reads)
	// pay for a crossed page; indexed writes carry their extra cycle in
	// BaseCycles unconditionally, and branches charge their own penalty
	// inside execute.
	if pageCrossed && desc.PageCross {
		extra++
	}

	return desc.BaseCycles + extra, nil
}

// dispatchInterrupt runs the shared NMI/IRQ stack protocol: push PC, push
// status with B clear and U set, set I, and load PC from the vector. BRK
// runs the same protocol itself with B forced set, in ops.go.
func (c *CPU) dispatchInterrupt(bus Bus, vector uint16) {
	c.pushWord(bus, c.PC)
	c.push(bus, c.StatusByte()&^uint8(bFlagMask))
	c.I = true
	c.PC = c.readVector(bus, vector)
}

func (c *CPU) readVector(bus Bus, vector uint16) uint16 {
	lo := uint16(bus.Read(vector))
	hi := uint16(bus.Read(vector + 1))
	return hi<<8 | lo
}

// push/pop implement the downward-growing page-one stack. SP wrapping
// past 0x00 or 0xFF is not an error: real hardware wraps silently and so
// does this.
func (c *CPU) push(bus Bus, value uint8) {
	bus.Write(stackBase+uint16(c.SP), value)
	c.SP--
}

func (c *CPU) pop(bus Bus) uint8 {
	c.SP++
	return bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(bus Bus, value uint16) {
	c.push(bus, uint8(value>>8))
	c.push(bus, uint8(value))
}

func (c *CPU) popWord(bus Bus) uint16 {
	lo := uint16(c.pop(bus))
	hi := uint16(c.pop(bus))
	return hi<<8 | lo
}

// Decode exposes a decode table entry for the disassembler and debugger.
// ok is false for opcodes this interpreter treats as fatal.
func Decode(opcode uint8) (desc Descriptor, ok bool) {
	desc = decodeTable[opcode]
	return desc, desc.BaseCycles != 0
}
