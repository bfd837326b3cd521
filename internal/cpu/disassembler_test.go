package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleImmediate(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x8000, 0xA9, 0x42)

	d := Disassemble(bus, 0x8000)

	assert.Equal(t, "LDA", d.Mnemonic)
	assert.Equal(t, "#$42", d.Operand)
	assert.Equal(t, "$8000: LDA #$42", d.String())
}

func TestDisassembleAbsoluteIndexed(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x8000, 0xBD, 0x00, 0x20) // LDA $2000,X

	d := Disassemble(bus, 0x8000)

	assert.Equal(t, "$2000,X", d.Operand)
}

func TestDisassembleRelativeShowsResolvedTarget(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x10F0, 0x90, 0x40) // BCC +0x40

	d := Disassemble(bus, 0x10F0)

	assert.Equal(t, "$1132", d.Operand)
}

func TestDisassembleImpliedHasNoOperand(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x8000, 0xEA)

	d := Disassemble(bus, 0x8000)

	assert.Equal(t, "NOP", d.Mnemonic)
	assert.Empty(t, d.Operand)
}

func TestDisassembleAccumulator(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x8000, 0x0A) // ASL A

	d := Disassemble(bus, 0x8000)

	assert.Equal(t, "A", d.Operand)
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	bus := &mockBus{}
	bus.load(0x8000, 0x02)

	d := Disassemble(bus, 0x8000)

	assert.Equal(t, "???", d.Mnemonic)
}
