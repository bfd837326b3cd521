package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nes6502/internal/cartridge"
	"nes6502/internal/ppu"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	return New(ppu.New())
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0001, 0x42)

	assert.Equal(t, uint8(0x42), b.Read(0x0801))
	assert.Equal(t, uint8(0x42), b.Read(0x1001))
	assert.Equal(t, uint8(0x42), b.Read(0x1801))
}

func TestPPURegisterMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x2000, 0x99)

	assert.Equal(t, uint8(0x99), b.Read(0x2008))
	assert.Equal(t, uint8(0x99), b.Read(0x3FF8))
}

func TestAPUIOStubRegion(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x4015, 0xFF) // should be silently dropped
	assert.Equal(t, uint8(0), b.Read(0x4015))
}

func TestNoCartridgeReadsZero(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, uint8(0), b.Read(0x8000))
}

func TestCartridgeDelegation(t *testing.T) {
	b := newTestBus(t)
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 2 // two PRG banks -> no mirroring
	prg := make([]byte, 32*1024)
	prg[0] = 0xAD
	data := append(header, prg...)

	cart, err := cartridge.Load(data)
	require.NoError(t, err)
	b.InsertCartridge(cart)

	assert.Equal(t, uint8(0xAD), b.Read(0x8000))
}

func TestCartridgeWriteIgnoredByNROM(t *testing.T) {
	b := newTestBus(t)
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 1
	data := append(header, make([]byte, 16*1024)...)

	cart, err := cartridge.Load(data)
	require.NoError(t, err)
	b.InsertCartridge(cart)

	b.Write(0x8000, 0xFF)
	assert.Equal(t, uint8(0), b.Read(0x8000))
}
