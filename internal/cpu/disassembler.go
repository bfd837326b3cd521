package cpu

import "fmt"

// operandFormats gives the printf template for each addressing mode's
// operand syntax, following common 6502 assembler convention.
var operandFormats = map[AddressingMode]string{
	Immediate:       "#$%02X",
	ZeroPage:        "$%02X",
	ZeroPageX:       "$%02X,X",
	ZeroPageY:       "$%02X,Y",
	Absolute:        "$%04X",
	AbsoluteX:       "$%04X,X",
	AbsoluteY:       "$%04X,Y",
	Indirect:        "($%04X)",
	IndexedIndirect: "($%02X,X)",
	IndirectIndexed: "($%02X),Y",
	Relative:        "$%04X",
}

// Disassembled is one decoded instruction: its address, raw bytes,
// mnemonic and formatted operand text.
type Disassembled struct {
	PC       uint16
	Bytes    []uint8
	Mnemonic string
	Operand  string
}

// String renders the instruction the way a 6502 assembly listing would:
// "$8000: LDA #$42".
func (d Disassembled) String() string {
	if d.Operand == "" {
		return fmt.Sprintf("$%04X: %s", d.PC, d.Mnemonic)
	}
	return fmt.Sprintf("$%04X: %s %s", d.PC, d.Mnemonic, d.Operand)
}

// Disassemble decodes the instruction at pc without mutating CPU state,
// reading its operand bytes directly from the bus. Relative branches are
// shown with their resolved absolute target, not the raw signed offset.
func Disassemble(bus Bus, pc uint16) Disassembled {
	opcode := bus.Read(pc)
	desc, ok := Decode(opcode)
	if !ok {
		return Disassembled{PC: pc, Bytes: []uint8{opcode}, Mnemonic: "???"}
	}

	bytes := make([]uint8, desc.Bytes)
	for i := range bytes {
		bytes[i] = bus.Read(pc + uint16(i))
	}

	var operand string
	switch desc.Mode {
	case Implied:
		// no operand
	case Accumulator:
		operand = "A"
	case Relative:
		offset := int8(bus.Read(pc + 1))
		target := uint16(int32(pc) + 2 + int32(offset))
		operand = fmt.Sprintf(operandFormats[Relative], target)
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndexedIndirect, IndirectIndexed:
		operand = fmt.Sprintf(operandFormats[desc.Mode], bus.Read(pc+1))
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		arg := uint16(bus.Read(pc+1)) | uint16(bus.Read(pc+2))<<8
		operand = fmt.Sprintf(operandFormats[desc.Mode], arg)
	}

	return Disassembled{PC: pc, Bytes: bytes, Mnemonic: desc.Mnemonic, Operand: operand}
}
