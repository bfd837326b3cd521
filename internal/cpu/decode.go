package cpu

// Operation identifies the semantic effect of a decoded instruction,
// independent of its addressing mode. Dispatch is a pair of matches: one
// over AddressingMode to compute the effective address (resolveAddress),
// one over Operation to apply the effect (execute) — a data-driven
// replacement for a 256-entry table of function pointers.
type Operation int

const (
	opLDA Operation = iota
	opLDX
	opLDY
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTXA
	opTYA
	opTSX
	opTXS
	opPHA
	opPLA
	opPHP
	opPLP
	opADC
	opSBC
	opCMP
	opCPX
	opCPY
	opAND
	opORA
	opEOR
	opBIT
	opASL
	opASLAcc
	opLSR
	opLSRAcc
	opROL
	opROLAcc
	opROR
	opRORAcc
	opINC
	opDEC
	opINX
	opINY
	opDEX
	opDEY
	opBCC
	opBCS
	opBEQ
	opBNE
	opBMI
	opBPL
	opBVC
	opBVS
	opJMP
	opJMPIndirect
	opJSR
	opRTS
	opBRK
	opRTI
	opCLC
	opSEC
	opCLI
	opSEI
	opCLD
	opSED
	opCLV
	opNOP
)

// Descriptor is the plain-data decode table entry: addressing mode,
// operation, instruction length, and cycle cost. A zero-value entry
// (BaseCycles == 0) marks an opcode byte this interpreter does not
// implement — only the official ~56 mnemonics are populated; unofficial
// opcodes are fatal on decode, per the source's original choice.
type Descriptor struct {
	Mnemonic   string
	Mode       AddressingMode
	Op         Operation
	Bytes      uint8
	BaseCycles uint8
	PageCross  bool // extra cycle on page-crossed read
}

// decodeTable is the 256-entry opcode decode table.
var decodeTable [256]Descriptor

func d(opcode uint8, mnemonic string, mode AddressingMode, op Operation, bytes, cycles uint8, pageCross bool) {
	decodeTable[opcode] = Descriptor{mnemonic, mode, op, bytes, cycles, pageCross}
}

func init() {
	// Load/Store
	d(0xA9, "LDA", Immediate, opLDA, 2, 2, false)
	d(0xA5, "LDA", ZeroPage, opLDA, 2, 3, false)
	d(0xB5, "LDA", ZeroPageX, opLDA, 2, 4, false)
	d(0xAD, "LDA", Absolute, opLDA, 3, 4, false)
	d(0xBD, "LDA", AbsoluteX, opLDA, 3, 4, true)
	d(0xB9, "LDA", AbsoluteY, opLDA, 3, 4, true)
	d(0xA1, "LDA", IndexedIndirect, opLDA, 2, 6, false)
	d(0xB1, "LDA", IndirectIndexed, opLDA, 2, 5, true)

	d(0xA2, "LDX", Immediate, opLDX, 2, 2, false)
	d(0xA6, "LDX", ZeroPage, opLDX, 2, 3, false)
	d(0xB6, "LDX", ZeroPageY, opLDX, 2, 4, false)
	d(0xAE, "LDX", Absolute, opLDX, 3, 4, false)
	d(0xBE, "LDX", AbsoluteY, opLDX, 3, 4, true)

	d(0xA0, "LDY", Immediate, opLDY, 2, 2, false)
	d(0xA4, "LDY", ZeroPage, opLDY, 2, 3, false)
	d(0xB4, "LDY", ZeroPageX, opLDY, 2, 4, false)
	d(0xAC, "LDY", Absolute, opLDY, 3, 4, false)
	d(0xBC, "LDY", AbsoluteX, opLDY, 3, 4, true)

	d(0x85, "STA", ZeroPage, opSTA, 2, 3, false)
	d(0x95, "STA", ZeroPageX, opSTA, 2, 4, false)
	d(0x8D, "STA", Absolute, opSTA, 3, 4, false)
	d(0x9D, "STA", AbsoluteX, opSTA, 3, 5, false)
	d(0x99, "STA", AbsoluteY, opSTA, 3, 5, false)
	d(0x81, "STA", IndexedIndirect, opSTA, 2, 6, false)
	d(0x91, "STA", IndirectIndexed, opSTA, 2, 6, false)

	d(0x86, "STX", ZeroPage, opSTX, 2, 3, false)
	d(0x96, "STX", ZeroPageY, opSTX, 2, 4, false)
	d(0x8E, "STX", Absolute, opSTX, 3, 4, false)

	d(0x84, "STY", ZeroPage, opSTY, 2, 3, false)
	d(0x94, "STY", ZeroPageX, opSTY, 2, 4, false)
	d(0x8C, "STY", Absolute, opSTY, 3, 4, false)

	// Transfers
	d(0xAA, "TAX", Implied, opTAX, 1, 2, false)
	d(0xA8, "TAY", Implied, opTAY, 1, 2, false)
	d(0x8A, "TXA", Implied, opTXA, 1, 2, false)
	d(0x98, "TYA", Implied, opTYA, 1, 2, false)
	d(0xBA, "TSX", Implied, opTSX, 1, 2, false)
	d(0x9A, "TXS", Implied, opTXS, 1, 2, false)

	// Stack
	d(0x48, "PHA", Implied, opPHA, 1, 3, false)
	d(0x68, "PLA", Implied, opPLA, 1, 4, false)
	d(0x08, "PHP", Implied, opPHP, 1, 3, false)
	d(0x28, "PLP", Implied, opPLP, 1, 4, false)

	// Arithmetic
	d(0x69, "ADC", Immediate, opADC, 2, 2, false)
	d(0x65, "ADC", ZeroPage, opADC, 2, 3, false)
	d(0x75, "ADC", ZeroPageX, opADC, 2, 4, false)
	d(0x6D, "ADC", Absolute, opADC, 3, 4, false)
	d(0x7D, "ADC", AbsoluteX, opADC, 3, 4, true)
	d(0x79, "ADC", AbsoluteY, opADC, 3, 4, true)
	d(0x61, "ADC", IndexedIndirect, opADC, 2, 6, false)
	d(0x71, "ADC", IndirectIndexed, opADC, 2, 5, true)

	d(0xE9, "SBC", Immediate, opSBC, 2, 2, false)
	d(0xE5, "SBC", ZeroPage, opSBC, 2, 3, false)
	d(0xF5, "SBC", ZeroPageX, opSBC, 2, 4, false)
	d(0xED, "SBC", Absolute, opSBC, 3, 4, false)
	d(0xFD, "SBC", AbsoluteX, opSBC, 3, 4, true)
	d(0xF9, "SBC", AbsoluteY, opSBC, 3, 4, true)
	d(0xE1, "SBC", IndexedIndirect, opSBC, 2, 6, false)
	d(0xF1, "SBC", IndirectIndexed, opSBC, 2, 5, true)

	// Comparisons
	d(0xC9, "CMP", Immediate, opCMP, 2, 2, false)
	d(0xC5, "CMP", ZeroPage, opCMP, 2, 3, false)
	d(0xD5, "CMP", ZeroPageX, opCMP, 2, 4, false)
	d(0xCD, "CMP", Absolute, opCMP, 3, 4, false)
	d(0xDD, "CMP", AbsoluteX, opCMP, 3, 4, true)
	d(0xD9, "CMP", AbsoluteY, opCMP, 3, 4, true)
	d(0xC1, "CMP", IndexedIndirect, opCMP, 2, 6, false)
	d(0xD1, "CMP", IndirectIndexed, opCMP, 2, 5, true)

	d(0xE0, "CPX", Immediate, opCPX, 2, 2, false)
	d(0xE4, "CPX", ZeroPage, opCPX, 2, 3, false)
	d(0xEC, "CPX", Absolute, opCPX, 3, 4, false)

	d(0xC0, "CPY", Immediate, opCPY, 2, 2, false)
	d(0xC4, "CPY", ZeroPage, opCPY, 2, 3, false)
	d(0xCC, "CPY", Absolute, opCPY, 3, 4, false)

	// Logic
	d(0x29, "AND", Immediate, opAND, 2, 2, false)
	d(0x25, "AND", ZeroPage, opAND, 2, 3, false)
	d(0x35, "AND", ZeroPageX, opAND, 2, 4, false)
	d(0x2D, "AND", Absolute, opAND, 3, 4, false)
	d(0x3D, "AND", AbsoluteX, opAND, 3, 4, true)
	d(0x39, "AND", AbsoluteY, opAND, 3, 4, true)
	d(0x21, "AND", IndexedIndirect, opAND, 2, 6, false)
	d(0x31, "AND", IndirectIndexed, opAND, 2, 5, true)

	d(0x09, "ORA", Immediate, opORA, 2, 2, false)
	d(0x05, "ORA", ZeroPage, opORA, 2, 3, false)
	d(0x15, "ORA", ZeroPageX, opORA, 2, 4, false)
	d(0x0D, "ORA", Absolute, opORA, 3, 4, false)
	d(0x1D, "ORA", AbsoluteX, opORA, 3, 4, true)
	d(0x19, "ORA", AbsoluteY, opORA, 3, 4, true)
	d(0x01, "ORA", IndexedIndirect, opORA, 2, 6, false)
	d(0x11, "ORA", IndirectIndexed, opORA, 2, 5, true)

	d(0x49, "EOR", Immediate, opEOR, 2, 2, false)
	d(0x45, "EOR", ZeroPage, opEOR, 2, 3, false)
	d(0x55, "EOR", ZeroPageX, opEOR, 2, 4, false)
	d(0x4D, "EOR", Absolute, opEOR, 3, 4, false)
	d(0x5D, "EOR", AbsoluteX, opEOR, 3, 4, true)
	d(0x59, "EOR", AbsoluteY, opEOR, 3, 4, true)
	d(0x41, "EOR", IndexedIndirect, opEOR, 2, 6, false)
	d(0x51, "EOR", IndirectIndexed, opEOR, 2, 5, true)

	d(0x24, "BIT", ZeroPage, opBIT, 2, 3, false)
	d(0x2C, "BIT", Absolute, opBIT, 3, 4, false)

	// Shift / rotate
	d(0x0A, "ASL", Accumulator, opASLAcc, 1, 2, false)
	d(0x06, "ASL", ZeroPage, opASL, 2, 5, false)
	d(0x16, "ASL", ZeroPageX, opASL, 2, 6, false)
	d(0x0E, "ASL", Absolute, opASL, 3, 6, false)
	d(0x1E, "ASL", AbsoluteX, opASL, 3, 7, false)

	d(0x4A, "LSR", Accumulator, opLSRAcc, 1, 2, false)
	d(0x46, "LSR", ZeroPage, opLSR, 2, 5, false)
	d(0x56, "LSR", ZeroPageX, opLSR, 2, 6, false)
	d(0x4E, "LSR", Absolute, opLSR, 3, 6, false)
	d(0x5E, "LSR", AbsoluteX, opLSR, 3, 7, false)

	d(0x2A, "ROL", Accumulator, opROLAcc, 1, 2, false)
	d(0x26, "ROL", ZeroPage, opROL, 2, 5, false)
	d(0x36, "ROL", ZeroPageX, opROL, 2, 6, false)
	d(0x2E, "ROL", Absolute, opROL, 3, 6, false)
	d(0x3E, "ROL", AbsoluteX, opROL, 3, 7, false)

	d(0x6A, "ROR", Accumulator, opRORAcc, 1, 2, false)
	d(0x66, "ROR", ZeroPage, opROR, 2, 5, false)
	d(0x76, "ROR", ZeroPageX, opROR, 2, 6, false)
	d(0x6E, "ROR", Absolute, opROR, 3, 6, false)
	d(0x7E, "ROR", AbsoluteX, opROR, 3, 7, false)

	// Increment / decrement
	d(0xE6, "INC", ZeroPage, opINC, 2, 5, false)
	d(0xF6, "INC", ZeroPageX, opINC, 2, 6, false)
	d(0xEE, "INC", Absolute, opINC, 3, 6, false)
	d(0xFE, "INC", AbsoluteX, opINC, 3, 7, false)

	d(0xC6, "DEC", ZeroPage, opDEC, 2, 5, false)
	d(0xD6, "DEC", ZeroPageX, opDEC, 2, 6, false)
	d(0xCE, "DEC", Absolute, opDEC, 3, 6, false)
	d(0xDE, "DEC", AbsoluteX, opDEC, 3, 7, false)

	d(0xE8, "INX", Implied, opINX, 1, 2, false)
	d(0xC8, "INY", Implied, opINY, 1, 2, false)
	d(0xCA, "DEX", Implied, opDEX, 1, 2, false)
	d(0x88, "DEY", Implied, opDEY, 1, 2, false)

	// Branches
	d(0x90, "BCC", Relative, opBCC, 2, 2, false)
	d(0xB0, "BCS", Relative, opBCS, 2, 2, false)
	d(0xF0, "BEQ", Relative, opBEQ, 2, 2, false)
	d(0xD0, "BNE", Relative, opBNE, 2, 2, false)
	d(0x30, "BMI", Relative, opBMI, 2, 2, false)
	d(0x10, "BPL", Relative, opBPL, 2, 2, false)
	d(0x70, "BVS", Relative, opBVS, 2, 2, false)
	d(0x50, "BVC", Relative, opBVC, 2, 2, false)

	// Control flow
	d(0x4C, "JMP", Absolute, opJMP, 3, 3, false)
	d(0x6C, "JMP", Indirect, opJMPIndirect, 3, 5, false)
	d(0x20, "JSR", Absolute, opJSR, 3, 6, false)
	d(0x60, "RTS", Implied, opRTS, 1, 6, false)
	d(0x00, "BRK", Implied, opBRK, 1, 7, false)
	d(0x40, "RTI", Implied, opRTI, 1, 6, false)

	// Flags
	d(0x18, "CLC", Implied, opCLC, 1, 2, false)
	d(0x38, "SEC", Implied, opSEC, 1, 2, false)
	d(0x58, "CLI", Implied, opCLI, 1, 2, false)
	d(0x78, "SEI", Implied, opSEI, 1, 2, false)
	d(0xD8, "CLD", Implied, opCLD, 1, 2, false)
	d(0xF8, "SED", Implied, opSED, 1, 2, false)
	d(0xB8, "CLV", Implied, opCLV, 1, 2, false)

	// No-op
	d(0xEA, "NOP", Implied, opNOP, 1, 2, false)
}
