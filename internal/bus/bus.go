// Package bus implements the CPU-visible address space: RAM mirroring,
// the PPU register window, the APU/IO stub region, and cartridge
// delegation through the mapper capability interface. This is the
// address-decode switch a CPU.Clock call reads and writes through every
// tick; it owns no CPU reference and is never stored by the CPU.
package bus

import (
	"nes6502/internal/cartridge"
	"nes6502/internal/ppu"
)

const (
	ramSize    = 0x0800
	ramMirror  = 0x1FFF
	ramMask    = 0x07FF
	ppuStart   = 0x2000
	ppuEnd     = 0x3FFF
	ppuRegMask = 0x0007
	ioStart    = 0x4000
	ioEnd      = 0x401F
)

// Bus is the Machine's address space. It satisfies cpu.Bus without
// importing the cpu package, keeping the CPU→bus dependency one-directional.
type Bus struct {
	ram  [ramSize]uint8
	ppu  *ppu.PPU
	cart *cartridge.Cartridge
}

// New builds a bus with a stub PPU and no cartridge loaded; reads in the
// cartridge range return 0 until InsertCartridge is called, the defined
// "no cartridge" state.
func New(p *ppu.PPU) *Bus {
	return &Bus{ppu: p}
}

// InsertCartridge swaps in the active cartridge. The caller is
// responsible for resetting the CPU afterward so it re-reads the vectors.
func (b *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
}

// Read routes a CPU address to RAM, the PPU register window, the stubbed
// APU/IO region, or the cartridge via its mapper. Unowned regions read 0.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirror:
		return b.ram[addr&ramMask]
	case addr >= ppuStart && addr <= ppuEnd:
		return b.ppu.ReadRegister(uint8(addr & ppuRegMask))
	case addr >= ioStart && addr <= ioEnd:
		return 0
	default:
		return b.readCartridge(addr)
	}
}

// Write routes a CPU write the same way Read does. Unowned regions and
// rejected mapper writes are silently dropped.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr <= ramMirror:
		b.ram[addr&ramMask] = value
	case addr >= ppuStart && addr <= ppuEnd:
		b.ppu.WriteRegister(uint8(addr&ppuRegMask), value)
	case addr >= ioStart && addr <= ioEnd:
		// APU/IO stub: writes ignored.
	default:
		b.writeCartridge(addr, value)
	}
}

func (b *Bus) readCartridge(addr uint16) uint8 {
	if b.cart == nil || b.cart.Mapper == nil {
		return 0
	}
	offset, ok := b.cart.Mapper.MapCPURead(addr)
	if !ok || int(offset) >= len(b.cart.PRG) {
		return 0
	}
	return b.cart.PRG[offset]
}

func (b *Bus) writeCartridge(addr uint16, value uint8) {
	if b.cart == nil || b.cart.Mapper == nil {
		return
	}
	offset, ok := b.cart.Mapper.MapCPUWrite(addr)
	if !ok || int(offset) >= len(b.cart.PRG) {
		return
	}
	b.cart.PRG[offset] = value
}
