// Package machine aggregates the Bus, CPU, cartridge and PPU stub into
// the single object a host or debugger drives. It exists so the CPU and
// Bus never hold references to each other: the Machine owns both and
// lends the bus to the CPU for the duration of each Clock call.
package machine

import (
	"nes6502/internal/bus"
	"nes6502/internal/cartridge"
	"nes6502/internal/cpu"
	"nes6502/internal/ppu"
)

// Machine is the host-facing emulator handle: load a ROM, reset, clock
// it, inspect or override state. It is the single type a CLI harness or
// debugger needs.
type Machine struct {
	CPU *cpu.CPU
	Bus *bus.Bus
	PPU *ppu.PPU

	cart *cartridge.Cartridge

	breakpoints map[uint16]bool
}

// New builds a Machine with a fresh CPU and bus; no cartridge is loaded
// and the CPU has not yet been reset.
func New() *Machine {
	p := ppu.New()
	return &Machine{
		CPU:         cpu.New(),
		Bus:         bus.New(p),
		PPU:         p,
		breakpoints: make(map[uint16]bool),
	}
}

// LoadROM parses an iNES image and installs it as the active cartridge.
// The caller must call Reset afterward to re-read the vectors.
func (m *Machine) LoadROM(data []byte) error {
	cart, err := cartridge.Load(data)
	if err != nil {
		return err
	}
	m.InsertCartridge(cart)
	return nil
}

// InsertCartridge installs an already-constructed cartridge.
func (m *Machine) InsertCartridge(cart *cartridge.Cartridge) {
	m.cart = cart
	m.Bus.InsertCartridge(cart)
}

// Reset performs the CPU reset sequence against the current bus state.
func (m *Machine) Reset() {
	m.CPU.Reset(m.Bus)
}

// Clock advances the machine by one master cycle.
func (m *Machine) Clock() error {
	return m.CPU.Clock(m.Bus)
}

// StepInstruction advances until the current instruction retires, then
// reports whether the new PC lands on an active breakpoint.
func (m *Machine) StepInstruction() (hitBreakpoint bool, err error) {
	if err := m.CPU.StepInstruction(m.Bus); err != nil {
		return false, err
	}
	return m.breakpoints[m.CPU.PC], nil
}

// Read/Write expose the bus for tooling (debugger memory views, pokes).
func (m *Machine) Read(addr uint16) uint8        { return m.Bus.Read(addr) }
func (m *Machine) Write(addr uint16, value uint8) { m.Bus.Write(addr, value) }

// SetPC, SetSP and SetFlag are debugger-only overrides: they let a test
// or inspection tool pose the CPU into an arbitrary state without going
// through the bus/decode loop.
func (m *Machine) SetPC(addr uint16)               { m.CPU.PC = addr }
func (m *Machine) SetSP(sp uint8)                  { m.CPU.SP = sp }
func (m *Machine) SetFlag(f cpu.Flag, value bool) { m.CPU.SetFlag(f, value) }

// AddBreakpoint, RemoveBreakpoint, ClearBreakpoints and HasBreakpoint
// manage the address set StepInstruction checks against after each step.
func (m *Machine) AddBreakpoint(addr uint16)    { m.breakpoints[addr] = true }
func (m *Machine) RemoveBreakpoint(addr uint16) { delete(m.breakpoints, addr) }
func (m *Machine) ClearBreakpoints()            { m.breakpoints = make(map[uint16]bool) }
func (m *Machine) HasBreakpoint(addr uint16) bool { return m.breakpoints[addr] }
