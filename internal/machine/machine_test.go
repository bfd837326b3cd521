package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nes6502/internal/cpu"
)

func buildROM(prg []byte, resetVector uint16) []byte {
	header := make([]byte, 16)
	copy(header, []byte("NES\x1A"))
	header[4] = uint8(len(prg) / (16 * 1024))
	if header[4] == 0 {
		header[4] = 1
	}
	full := make([]byte, int(header[4])*16*1024)
	copy(full, prg)
	full[0x3FFC] = uint8(resetVector)
	full[0x3FFD] = uint8(resetVector >> 8)
	return append(header, full...)
}

func TestLoadROMAndReset(t *testing.T) {
	m := New()
	rom := buildROM([]byte{0xA9, 0x42}, 0x8000)

	require.NoError(t, m.LoadROM(rom))
	m.Reset()

	assert.Equal(t, uint16(0x8000), m.CPU.PC)
}

func TestStepInstructionRunsOneInstruction(t *testing.T) {
	m := New()
	rom := buildROM([]byte{0xA9, 0x42, 0xAA}, 0x8000)
	require.NoError(t, m.LoadROM(rom))
	m.Reset()

	hit, err := m.StepInstruction()
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, uint8(0x42), m.CPU.A)
}

func TestBreakpointDetection(t *testing.T) {
	m := New()
	rom := buildROM([]byte{0xA9, 0x42, 0xAA}, 0x8000)
	require.NoError(t, m.LoadROM(rom))
	m.Reset()
	m.AddBreakpoint(0x8002)

	_, err := m.StepInstruction()
	require.NoError(t, err)
	hit, err := m.StepInstruction()
	require.NoError(t, err)

	assert.True(t, hit)
	assert.True(t, m.HasBreakpoint(0x8002))

	m.RemoveBreakpoint(0x8002)
	assert.False(t, m.HasBreakpoint(0x8002))
}

func TestDebuggerOverrides(t *testing.T) {
	m := New()
	m.SetPC(0x1234)
	m.SetSP(0x80)
	m.SetFlag(cpu.FlagCarry, true)

	assert.Equal(t, uint16(0x1234), m.CPU.PC)
	assert.Equal(t, uint8(0x80), m.CPU.SP)
	assert.True(t, m.CPU.GetFlag(cpu.FlagCarry))
}

func TestReadWriteDelegatesToBus(t *testing.T) {
	m := New()
	m.Write(0x0010, 0x99)
	assert.Equal(t, uint8(0x99), m.Read(0x0010))
}
