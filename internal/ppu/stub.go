// Package ppu provides the minimal stub peripheral the CPU's bus window
// addresses. Full picture generation is out of scope; what's modeled here
// is only the register mirroring behavior the bus needs to route through.
package ppu

// PPU is a stub: it exposes the eight memory-mapped registers the CPU can
// see at 0x2000-0x3FFF (mirrored every 8 bytes) but does not render or
// otherwise act on them. Each register keeps the last value written to
// it, and reads return that value, so a debugger or test can observe
// what the CPU wrote.
type PPU struct {
	registers [8]uint8
}

// New returns a stub PPU with all registers zeroed.
func New() *PPU {
	return &PPU{}
}

// ReadRegister reads one of the eight CPU-visible registers. reg is
// expected already reduced to 0-7 by the bus's `& 0x0007` mirroring.
func (p *PPU) ReadRegister(reg uint8) uint8 {
	return p.registers[reg&0x07]
}

// WriteRegister writes one of the eight CPU-visible registers. Nothing
// downstream reacts to the write; this only holds the last value latched
// so debugger inspection and round-trip tests have something to observe.
func (p *PPU) WriteRegister(reg uint8, value uint8) {
	p.registers[reg&0x07] = value
}
