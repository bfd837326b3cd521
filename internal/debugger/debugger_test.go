package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nes6502/internal/machine"
)

func buildROM(prg []byte, resetVector uint16) []byte {
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = 1
	full := make([]byte, 16*1024)
	copy(full, prg)
	full[0x3FFC] = uint8(resetVector)
	full[0x3FFD] = uint8(resetVector >> 8)
	return append(header, full...)
}

func newTestDebugger(t *testing.T, prg []byte) *Debugger {
	t.Helper()
	m := machine.New()
	require.NoError(t, m.LoadROM(buildROM(prg, 0x8000)))
	m.Reset()
	return New(m)
}

func TestStepTallysInstructionAndCycleCounts(t *testing.T) {
	d := newTestDebugger(t, []byte{0xA9, 0x42, 0xAA}) // LDA #$42 ; TAX

	_, err := d.Step()
	require.NoError(t, err)
	_, err = d.Step()
	require.NoError(t, err)

	assert.Equal(t, uint64(2), d.InstructionCount())
	assert.Equal(t, uint64(4), d.CycleCount()) // 2 + 2 cycles
}

func TestBreakpointHaltsRun(t *testing.T) {
	d := newTestDebugger(t, []byte{0xA9, 0x01, 0xA9, 0x02, 0xA9, 0x03})
	d.AddBreakpoint(0x8004)

	err := d.Run(0)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x8004), d.Registers().PC)
	assert.False(t, d.IsRunning())
}

func TestDisassembleRangeFollowsInstructionLengths(t *testing.T) {
	d := newTestDebugger(t, []byte{0xA9, 0x42, 0xAA, 0xEA})

	listing := d.DisassembleRange(0x8000, 0x8004)

	require.Len(t, listing, 3)
	assert.Equal(t, "LDA", listing[0].Mnemonic)
	assert.Equal(t, "TAX", listing[1].Mnemonic)
	assert.Equal(t, "NOP", listing[2].Mnemonic)
}

func TestStackReflectsPushedBytes(t *testing.T) {
	d := newTestDebugger(t, []byte{0x48}) // PHA

	_, err := d.Step()
	require.NoError(t, err)

	stack := d.Stack()
	assert.Len(t, stack, 1)
}

func TestRegistersSnapshot(t *testing.T) {
	d := newTestDebugger(t, []byte{0xA9, 0x7F})

	_, err := d.Step()
	require.NoError(t, err)

	snap := d.Registers()
	assert.Equal(t, uint8(0x7F), snap.A)
	assert.Equal(t, uint16(0x8002), snap.PC)
}
