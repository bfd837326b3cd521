package cartridge

// NROM is mapper 0: static PRG ROM with no bank switching, the NES's
// simplest cartridge. PRG decodes to the whole 32 KiB window when two
// banks are present, or the lower 16 KiB mirrored into the upper half
// when only one bank is present. CHR is a flat 8 KiB window, ROM or RAM.
type NROM struct {
	cart     *Cartridge
	prgBanks uint8
}

func (m *NROM) banks() uint8 {
	if m.prgBanks == 0 {
		m.prgBanks = uint8(len(m.cart.PRG) / (16 * 1024))
	}
	return m.prgBanks
}

// MapCPURead translates a CPU address in 0x8000..=0xFFFF to a PRG
// offset, mirroring a single 16 KiB bank across the full 32 KiB window.
func (m *NROM) MapCPURead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	offset := addr - 0x8000
	if m.banks() == 1 {
		offset &= 0x3FFF
	} else {
		offset &= 0x7FFF
	}
	return uint32(offset), true
}

// MapCPUWrite always reports false: NROM has no registers and its PRG is
// ROM, so the bus drops every CPU write in the cartridge range.
func (m *NROM) MapCPUWrite(addr uint16) (uint32, bool) {
	return 0, false
}

// MapPPURead translates a PPU address in 0x0000..=0x1FFF directly to a
// CHR offset; NROM's 8 KiB CHR window has no banking.
func (m *NROM) MapPPURead(addr uint16) (uint32, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	return uint32(addr), true
}

// MapPPUWrite always reports false for CHR ROM. Cartridges with CHR RAM
// still route through here; the bus checks Cartridge.CHRIsRAM before
// honoring a write regardless of what the mapper reports.
func (m *NROM) MapPPUWrite(addr uint16) (uint32, bool) {
	return 0, false
}
