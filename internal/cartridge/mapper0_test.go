package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNROMMapCPUReadTwoBanks(t *testing.T) {
	cart := &Cartridge{PRG: make([]uint8, 32*1024)}
	m := &NROM{cart: cart}

	offset, ok := m.MapCPURead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0), offset)

	offset, ok = m.MapCPURead(0xFFFF)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x7FFF), offset)
}

func TestNROMMapCPUReadOneBankMirrors(t *testing.T) {
	cart := &Cartridge{PRG: make([]uint8, 16*1024)}
	m := &NROM{cart: cart}

	low, ok := m.MapCPURead(0x8000)
	assert.True(t, ok)
	high, ok := m.MapCPURead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, low, high)
	assert.Equal(t, uint32(0), low)
}

func TestNROMMapCPUReadBelowPRGWindow(t *testing.T) {
	cart := &Cartridge{PRG: make([]uint8, 16*1024)}
	m := &NROM{cart: cart}

	_, ok := m.MapCPURead(0x7FFF)
	assert.False(t, ok)
}

func TestNROMMapCPUWriteAlwaysRejected(t *testing.T) {
	cart := &Cartridge{PRG: make([]uint8, 16*1024)}
	m := &NROM{cart: cart}

	_, ok := m.MapCPUWrite(0x8000)
	assert.False(t, ok)
}

func TestNROMMapPPURead(t *testing.T) {
	cart := &Cartridge{CHR: make([]uint8, 8*1024)}
	m := &NROM{cart: cart}

	offset, ok := m.MapPPURead(0x1234)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1234), offset)

	_, ok = m.MapPPURead(0x2000)
	assert.False(t, ok)
}

func TestNROMMapPPUWriteAlwaysRejected(t *testing.T) {
	cart := &Cartridge{CHR: make([]uint8, 8*1024)}
	m := &NROM{cart: cart}

	_, ok := m.MapPPUWrite(0x0000)
	assert.False(t, ok)
}
