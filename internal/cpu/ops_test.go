package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBITLeavesAccumulatorUnchanged(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0x0F
	bus.mem[0x10] = 0xC0 // bits 7 and 6 set, A&m == 0
	bus.load(0x0000, 0x24, 0x10) // BIT $10

	runInstruction(t, c, bus)

	assert.Equal(t, uint8(0x0F), c.A)
	assert.True(t, c.Z)
	assert.True(t, c.N)
	assert.True(t, c.V)
}

func TestStackRoundTripPHAPLA(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0x55
	sp := c.SP
	bus.load(0x0000, 0x48, 0xA9, 0x00, 0x68) // PHA ; LDA #0 ; PLA

	runInstruction(t, c, bus)
	runInstruction(t, c, bus)
	assert.Equal(t, uint8(0x00), c.A)
	runInstruction(t, c, bus)

	assert.Equal(t, uint8(0x55), c.A)
	assert.Equal(t, sp, c.SP)
}

func TestPLPDiscardsPulledBreakBitAndForcesUnused(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	bus.load(0x0000, 0x08, 0x28) // PHP ; PLP

	runInstruction(t, c, bus) // PHP pushes with B and U forced set
	runInstruction(t, c, bus) // PLP

	assert.False(t, c.B)
	assert.NotZero(t, c.StatusByte()&unusedMask)
}

func TestCompareSetsCarryZeroNegative(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0x10
	bus.load(0x0000, 0xC9, 0x10) // CMP #$10

	runInstruction(t, c, bus)

	assert.True(t, c.C)
	assert.True(t, c.Z)
	assert.False(t, c.N)
}

func TestCompareRegisterLessThanOperand(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0x05
	bus.load(0x0000, 0xC9, 0x10) // CMP #$10

	runInstruction(t, c, bus)

	assert.False(t, c.C)
	assert.False(t, c.Z)
	assert.True(t, c.N) // (0x05-0x10)&0xFF = 0xF5, bit 7 set
}

func TestROLThenRORRestoresByte(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0x81
	c.C = false
	bus.load(0x0000, 0x2A, 0x6A) // ROL A ; ROR A

	original := c.A
	runInstruction(t, c, bus)
	runInstruction(t, c, bus)

	assert.Equal(t, original, c.A)
}

func TestTXSHasNoFlagEffect(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.X = 0x00
	c.Z = false
	bus.load(0x0000, 0x9A) // TXS

	runInstruction(t, c, bus)

	assert.Equal(t, uint8(0x00), c.SP)
	assert.False(t, c.Z)
}

func TestIndexedReadChargesCycleOnlyWhenPageCrossed(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.X = 0x01
	bus.load(0x0000, 0xBD, 0xFF, 0x02) // LDA $02FF,X -> $0300, crossed
	bus.load(0x0003, 0xBD, 0x00, 0x03) // LDA $0300,X -> $0301, same page

	assert.Equal(t, 5, runInstruction(t, c, bus))
	assert.Equal(t, 4, runInstruction(t, c, bus))
}

func TestIndexedStorePaysFixedCostRegardlessOfCross(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.X = 0x01
	bus.load(0x0000, 0x9D, 0xFF, 0x02) // STA $02FF,X -> $0300, crossed
	bus.load(0x0003, 0x9D, 0x00, 0x03) // STA $0300,X -> $0301, same page

	assert.Equal(t, 5, runInstruction(t, c, bus))
	assert.Equal(t, 5, runInstruction(t, c, bus))
}

func TestLSRAlwaysClearsNegative(t *testing.T) {
	c, bus := newTestCPU(t)
	bus.setResetVector(0x0000)
	c.Reset(bus)
	c.A = 0xFF
	bus.load(0x0000, 0x4A) // LSR A

	runInstruction(t, c, bus)

	assert.False(t, c.N)
	assert.True(t, c.C)
}
