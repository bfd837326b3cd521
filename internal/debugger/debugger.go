// Package debugger implements the host-facing inspection layer: step
// control, breakpoints, disassembly listings, register/stack views and
// running instruction/cycle counters, all read-only against the Machine
// except for the breakpoint set and explicit memory pokes.
package debugger

import (
	"nes6502/internal/cpu"
	"nes6502/internal/machine"
)

// Debugger wraps a Machine with statistics and disassembly helpers. It
// holds no state the Machine doesn't already own except running totals,
// so multiple Debuggers could share one Machine without conflict as long
// as writes are serialized between ticks.
type Debugger struct {
	m *machine.Machine

	instructionCount uint64
	cycleCount       uint64
	running          bool
}

// New wraps an existing Machine for inspection.
func New(m *machine.Machine) *Debugger {
	return &Debugger{m: m}
}

// Step advances exactly one instruction, tallying the ticks it took into
// the running cycle counter, and reports whether the new PC lands on a
// breakpoint. The CPU exposes only a remaining-cycles-in-flight counter,
// so the debugger counts ticks itself rather than reading a running total
// off the CPU.
func (d *Debugger) Step() (hitBreakpoint bool, err error) {
	var ticks uint64
	if err := d.m.CPU.Clock(d.m.Bus); err != nil {
		return false, err
	}
	ticks++
	for d.m.CPU.RemainingCycles() != 0 {
		if err := d.m.CPU.Clock(d.m.Bus); err != nil {
			return false, err
		}
		ticks++
	}
	d.instructionCount++
	d.cycleCount += ticks
	hit := d.m.HasBreakpoint(d.m.CPU.PC)
	if hit {
		d.running = false
	}
	return hit, nil
}

// Run steps until a breakpoint is hit, an error occurs, or maxInstructions
// is reached (0 means unbounded).
func (d *Debugger) Run(maxInstructions uint64) error {
	d.running = true
	for d.running {
		hit, err := d.Step()
		if err != nil {
			d.running = false
			return err
		}
		if hit {
			break
		}
		if maxInstructions > 0 && d.instructionCount >= maxInstructions {
			break
		}
	}
	d.running = false
	return nil
}

// Stop halts a Run loop; callers running the debugger from another
// goroutine would call this to request an exit at the next step.
func (d *Debugger) Stop() { d.running = false }

// IsRunning reports whether a Run loop is currently executing.
func (d *Debugger) IsRunning() bool { return d.running }

// Reset resets the underlying machine and zeroes the counters.
func (d *Debugger) Reset() {
	d.m.Reset()
	d.instructionCount = 0
	d.cycleCount = 0
}

// Breakpoint management delegates directly to the Machine's set.
func (d *Debugger) AddBreakpoint(addr uint16)      { d.m.AddBreakpoint(addr) }
func (d *Debugger) RemoveBreakpoint(addr uint16)   { d.m.RemoveBreakpoint(addr) }
func (d *Debugger) ClearBreakpoints()              { d.m.ClearBreakpoints() }
func (d *Debugger) HasBreakpoint(addr uint16) bool { return d.m.HasBreakpoint(addr) }

// DisassembleInstruction decodes the instruction at address without
// advancing the CPU.
func (d *Debugger) DisassembleInstruction(addr uint16) cpu.Disassembled {
	return cpu.Disassemble(d.m.Bus, addr)
}

// DisassembleRange decodes consecutive instructions from start up to
// (not including) end, following each instruction's actual byte length
// so the listing stays aligned even across variable-length opcodes.
func (d *Debugger) DisassembleRange(start, end uint16) []cpu.Disassembled {
	var out []cpu.Disassembled
	addr := start
	for addr < end {
		inst := d.DisassembleInstruction(addr)
		out = append(out, inst)
		step := uint16(len(inst.Bytes))
		if step == 0 {
			step = 1
		}
		addr += step
	}
	return out
}

// DisassembleAroundPC returns a listing centered on the current PC: a
// fixed instruction count before it, the instruction at PC, and after
// more after it. Finding "before" requires walking forward from somewhere
// earlier since 6502 code has no fixed instruction length, so this
// decodes forward once from before*3 bytes ahead of PC (three bytes being
// the longest instruction) and keeps the last before entries. That start
// point is fixed, so when it falls inside an instruction the entries
// before PC can be misaligned.
func (d *Debugger) DisassembleAroundPC(before, after int) []cpu.Disassembled {
	pc := d.m.CPU.PC
	scanStart := pc
	if int(pc) > before*3 {
		scanStart = pc - uint16(before*3)
	} else {
		scanStart = 0
	}

	full := d.DisassembleRange(scanStart, pc)
	startIdx := 0
	if len(full) > before {
		startIdx = len(full) - before
	}
	result := append([]cpu.Disassembled{}, full[startIdx:]...)

	addr := pc
	for i := 0; i <= after; i++ {
		inst := d.DisassembleInstruction(addr)
		result = append(result, inst)
		step := uint16(len(inst.Bytes))
		if step == 0 {
			step = 1
		}
		addr += step
	}
	return result
}

// RegisterSnapshot is a read-only copy of the CPU's visible state.
type RegisterSnapshot struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	Status  uint8
}

// Registers returns a snapshot of the CPU register file.
func (d *Debugger) Registers() RegisterSnapshot {
	c := d.m.CPU
	return RegisterSnapshot{A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, Status: c.StatusByte()}
}

// ReadMemory and WriteMemory expose the bus for inspection and pokes.
// Writes must only be issued between ticks, never while an instruction
// is mid-flight.
func (d *Debugger) ReadMemory(addr uint16) uint8        { return d.m.Read(addr) }
func (d *Debugger) WriteMemory(addr uint16, value uint8) { d.m.Write(addr, value) }

// ReadMemoryRange reads a contiguous block for a hex-dump style view.
func (d *Debugger) ReadMemoryRange(start, end uint16) []uint8 {
	out := make([]uint8, 0, int(end)-int(start))
	for a := start; a < end; a++ {
		out = append(out, d.m.Read(a))
	}
	return out
}

// Stack returns the bytes currently between SP+1 and the top of page
// one, the part of the stack page holding live data.
func (d *Debugger) Stack() []uint8 {
	sp := d.m.CPU.SP
	return d.ReadMemoryRange(0x0100+uint16(sp)+1, 0x0200)
}

// InstructionCount and CycleCount report the running totals accumulated
// since construction or the last Reset.
func (d *Debugger) InstructionCount() uint64 { return d.instructionCount }
func (d *Debugger) CycleCount() uint64       { return d.cycleCount }
