// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// An opsym is an internal symbol used to associate an opcode's data
// with its instructions.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPLA
	symPLP
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA

	// unofficial
	symALR
	symANC
	symARR
	symAXS
	symDCP
	symISB
	symJAM
	symLAS
	symLAX
	symLXA
	symRLA
	symRRA
	symSAX
	symSHA
	symSHX
	symSHY
	symSLO
	symSRE
	symTAS
	symXAA
)

type instfunc func(c *CPU, inst *Instruction, operand []byte)

// Emulator implementation for each opcode
type opcodeImpl struct {
	sym  opsym
	name string
	fn   instfunc
}

var impl = []opcodeImpl{
	{symADC, "ADC", (*CPU).adc},
	{symAND, "AND", (*CPU).and},
	{symASL, "ASL", (*CPU).asl},
	{symBCC, "BCC", (*CPU).bcc},
	{symBCS, "BCS", (*CPU).bcs},
	{symBEQ, "BEQ", (*CPU).beq},
	{symBIT, "BIT", (*CPU).bit},
	{symBMI, "BMI", (*CPU).bmi},
	{symBNE, "BNE", (*CPU).bne},
	{symBPL, "BPL", (*CPU).bpl},
	{symBRK, "BRK", (*CPU).brk},
	{symBVC, "BVC", (*CPU).bvc},
	{symBVS, "BVS", (*CPU).bvs},
	{symCLC, "CLC", (*CPU).clc},
	{symCLD, "CLD", (*CPU).cld},
	{symCLI, "CLI", (*CPU).cli},
	{symCLV, "CLV", (*CPU).clv},
	{symCMP, "CMP", (*CPU).cmp},
	{symCPX, "CPX", (*CPU).cpx},
	{symCPY, "CPY", (*CPU).cpy},
	{symDEC, "DEC", (*CPU).dec},
	{symDEX, "DEX", (*CPU).dex},
	{symDEY, "DEY", (*CPU).dey},
	{symEOR, "EOR", (*CPU).eor},
	{symINC, "INC", (*CPU).inc},
	{symINX, "INX", (*CPU).inx},
	{symINY, "INY", (*CPU).iny},
	{symJMP, "JMP", (*CPU).jmp},
	{symJSR, "JSR", (*CPU).jsr},
	{symLDA, "LDA", (*CPU).lda},
	{symLDX, "LDX", (*CPU).ldx},
	{symLDY, "LDY", (*CPU).ldy},
	{symLSR, "LSR", (*CPU).lsr},
	{symNOP, "NOP", (*CPU).nop},
	{symORA, "ORA", (*CPU).ora},
	{symPHA, "PHA", (*CPU).pha},
	{symPHP, "PHP", (*CPU).php},
	{symPLA, "PLA", (*CPU).pla},
	{symPLP, "PLP", (*CPU).plp},
	{symROL, "ROL", (*CPU).rol},
	{symROR, "ROR", (*CPU).ror},
	{symRTI, "RTI", (*CPU).rti},
	{symRTS, "RTS", (*CPU).rts},
	{symSBC, "SBC", (*CPU).sbc},
	{symSEC, "SEC", (*CPU).sec},
	{symSED, "SED", (*CPU).sed},
	{symSEI, "SEI", (*CPU).sei},
	{symSTA, "STA", (*CPU).sta},
	{symSTX, "STX", (*CPU).stx},
	{symSTY, "STY", (*CPU).sty},
	{symTAX, "TAX", (*CPU).tax},
	{symTAY, "TAY", (*CPU).tay},
	{symTSX, "TSX", (*CPU).tsx},
	{symTXA, "TXA", (*CPU).txa},
	{symTXS, "TXS", (*CPU).txs},
	{symTYA, "TYA", (*CPU).tya},
	{symALR, "ALR", (*CPU).alr},
	{symANC, "ANC", (*CPU).anc},
	{symARR, "ARR", (*CPU).arr},
	{symAXS, "AXS", (*CPU).axs},
	{symDCP, "DCP", (*CPU).dcp},
	{symISB, "ISB", (*CPU).isb},
	{symJAM, "JAM", (*CPU).jam},
	{symLAS, "LAS", (*CPU).las},
	{symLAX, "LAX", (*CPU).lax},
	{symLXA, "LXA", (*CPU).lxa},
	{symRLA, "RLA", (*CPU).rla},
	{symRRA, "RRA", (*CPU).rra},
	{symSAX, "SAX", (*CPU).sax},
	{symSHA, "SHA", (*CPU).sha},
	{symSHX, "SHX", (*CPU).shx},
	{symSHY, "SHY", (*CPU).shy},
	{symSLO, "SLO", (*CPU).slo},
	{symSRE, "SRE", (*CPU).sre},
	{symTAS, "TAS", (*CPU).tas},
	{symXAA, "XAA", (*CPU).xaa},
}

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

// Instruction length in bytes for each addressing mode, opcode included.
var modeLength = [...]byte{
	IMM: 2, IMP: 1, REL: 2, ZPG: 2, ZPX: 2, ZPY: 2, ABS: 3,
	ABX: 3, ABY: 3, IND: 3, IDX: 2, IDY: 2, ACC: 1,
}

// Opcode data for an (opcode, mode) pair
type opcodeData struct {
	opcode     byte  // opcode hex value
	sym        opsym // internal opcode symbol
	mode       Mode  // addressing mode
	cycles     byte  // number of CPU cycles to execute command
	bpcycles   byte  // additional CPU cycles if command crosses page boundary
	unofficial bool  // opcode is outside the documented instruction set
}

// All 256 opcodes in opcode order. Branch penalties are applied by the
// branch logic rather than through bpcycles.
var data = [256]opcodeData{
	{0x00, symBRK, IMP, 7, 0, false},
	{0x01, symORA, IDX, 6, 0, false},
	{0x02, symJAM, IMP, 2, 0, true},
	{0x03, symSLO, IDX, 8, 0, true},
	{0x04, symNOP, ZPG, 3, 0, true},
	{0x05, symORA, ZPG, 3, 0, false},
	{0x06, symASL, ZPG, 5, 0, false},
	{0x07, symSLO, ZPG, 5, 0, true},
	{0x08, symPHP, IMP, 3, 0, false},
	{0x09, symORA, IMM, 2, 0, false},
	{0x0a, symASL, ACC, 2, 0, false},
	{0x0b, symANC, IMM, 2, 0, true},
	{0x0c, symNOP, ABS, 4, 0, true},
	{0x0d, symORA, ABS, 4, 0, false},
	{0x0e, symASL, ABS, 6, 0, false},
	{0x0f, symSLO, ABS, 6, 0, true},

	{0x10, symBPL, REL, 2, 0, false},
	{0x11, symORA, IDY, 5, 1, false},
	{0x12, symJAM, IMP, 2, 0, true},
	{0x13, symSLO, IDY, 8, 0, true},
	{0x14, symNOP, ZPX, 4, 0, true},
	{0x15, symORA, ZPX, 4, 0, false},
	{0x16, symASL, ZPX, 6, 0, false},
	{0x17, symSLO, ZPX, 6, 0, true},
	{0x18, symCLC, IMP, 2, 0, false},
	{0x19, symORA, ABY, 4, 1, false},
	{0x1a, symNOP, IMP, 2, 0, true},
	{0x1b, symSLO, ABY, 7, 0, true},
	{0x1c, symNOP, ABX, 4, 1, true},
	{0x1d, symORA, ABX, 4, 1, false},
	{0x1e, symASL, ABX, 7, 0, false},
	{0x1f, symSLO, ABX, 7, 0, true},

	{0x20, symJSR, ABS, 6, 0, false},
	{0x21, symAND, IDX, 6, 0, false},
	{0x22, symJAM, IMP, 2, 0, true},
	{0x23, symRLA, IDX, 8, 0, true},
	{0x24, symBIT, ZPG, 3, 0, false},
	{0x25, symAND, ZPG, 3, 0, false},
	{0x26, symROL, ZPG, 5, 0, false},
	{0x27, symRLA, ZPG, 5, 0, true},
	{0x28, symPLP, IMP, 4, 0, false},
	{0x29, symAND, IMM, 2, 0, false},
	{0x2a, symROL, ACC, 2, 0, false},
	{0x2b, symANC, IMM, 2, 0, true},
	{0x2c, symBIT, ABS, 4, 0, false},
	{0x2d, symAND, ABS, 4, 0, false},
	{0x2e, symROL, ABS, 6, 0, false},
	{0x2f, symRLA, ABS, 6, 0, true},

	{0x30, symBMI, REL, 2, 0, false},
	{0x31, symAND, IDY, 5, 1, false},
	{0x32, symJAM, IMP, 2, 0, true},
	{0x33, symRLA, IDY, 8, 0, true},
	{0x34, symNOP, ZPX, 4, 0, true},
	{0x35, symAND, ZPX, 4, 0, false},
	{0x36, symROL, ZPX, 6, 0, false},
	{0x37, symRLA, ZPX, 6, 0, true},
	{0x38, symSEC, IMP, 2, 0, false},
	{0x39, symAND, ABY, 4, 1, false},
	{0x3a, symNOP, IMP, 2, 0, true},
	{0x3b, symRLA, ABY, 7, 0, true},
	{0x3c, symNOP, ABX, 4, 1, true},
	{0x3d, symAND, ABX, 4, 1, false},
	{0x3e, symROL, ABX, 7, 0, false},
	{0x3f, symRLA, ABX, 7, 0, true},

	{0x40, symRTI, IMP, 6, 0, false},
	{0x41, symEOR, IDX, 6, 0, false},
	{0x42, symJAM, IMP, 2, 0, true},
	{0x43, symSRE, IDX, 8, 0, true},
	{0x44, symNOP, ZPG, 3, 0, true},
	{0x45, symEOR, ZPG, 3, 0, false},
	{0x46, symLSR, ZPG, 5, 0, false},
	{0x47, symSRE, ZPG, 5, 0, true},
	{0x48, symPHA, IMP, 3, 0, false},
	{0x49, symEOR, IMM, 2, 0, false},
	{0x4a, symLSR, ACC, 2, 0, false},
	{0x4b, symALR, IMM, 2, 0, true},
	{0x4c, symJMP, ABS, 3, 0, false},
	{0x4d, symEOR, ABS, 4, 0, false},
	{0x4e, symLSR, ABS, 6, 0, false},
	{0x4f, symSRE, ABS, 6, 0, true},

	{0x50, symBVC, REL, 2, 0, false},
	{0x51, symEOR, IDY, 5, 1, false},
	{0x52, symJAM, IMP, 2, 0, true},
	{0x53, symSRE, IDY, 8, 0, true},
	{0x54, symNOP, ZPX, 4, 0, true},
	{0x55, symEOR, ZPX, 4, 0, false},
	{0x56, symLSR, ZPX, 6, 0, false},
	{0x57, symSRE, ZPX, 6, 0, true},
	{0x58, symCLI, IMP, 2, 0, false},
	{0x59, symEOR, ABY, 4, 1, false},
	{0x5a, symNOP, IMP, 2, 0, true},
	{0x5b, symSRE, ABY, 7, 0, true},
	{0x5c, symNOP, ABX, 4, 1, true},
	{0x5d, symEOR, ABX, 4, 1, false},
	{0x5e, symLSR, ABX, 7, 0, false},
	{0x5f, symSRE, ABX, 7, 0, true},

	{0x60, symRTS, IMP, 6, 0, false},
	{0x61, symADC, IDX, 6, 0, false},
	{0x62, symJAM, IMP, 2, 0, true},
	{0x63, symRRA, IDX, 8, 0, true},
	{0x64, symNOP, ZPG, 3, 0, true},
	{0x65, symADC, ZPG, 3, 0, false},
	{0x66, symROR, ZPG, 5, 0, false},
	{0x67, symRRA, ZPG, 5, 0, true},
	{0x68, symPLA, IMP, 4, 0, false},
	{0x69, symADC, IMM, 2, 0, false},
	{0x6a, symROR, ACC, 2, 0, false},
	{0x6b, symARR, IMM, 2, 0, true},
	{0x6c, symJMP, IND, 5, 0, false},
	{0x6d, symADC, ABS, 4, 0, false},
	{0x6e, symROR, ABS, 6, 0, false},
	{0x6f, symRRA, ABS, 6, 0, true},

	{0x70, symBVS, REL, 2, 0, false},
	{0x71, symADC, IDY, 5, 1, false},
	{0x72, symJAM, IMP, 2, 0, true},
	{0x73, symRRA, IDY, 8, 0, true},
	{0x74, symNOP, ZPX, 4, 0, true},
	{0x75, symADC, ZPX, 4, 0, false},
	{0x76, symROR, ZPX, 6, 0, false},
	{0x77, symRRA, ZPX, 6, 0, true},
	{0x78, symSEI, IMP, 2, 0, false},
	{0x79, symADC, ABY, 4, 1, false},
	{0x7a, symNOP, IMP, 2, 0, true},
	{0x7b, symRRA, ABY, 7, 0, true},
	{0x7c, symNOP, ABX, 4, 1, true},
	{0x7d, symADC, ABX, 4, 1, false},
	{0x7e, symROR, ABX, 7, 0, false},
	{0x7f, symRRA, ABX, 7, 0, true},

	{0x80, symNOP, IMM, 2, 0, true},
	{0x81, symSTA, IDX, 6, 0, false},
	{0x82, symNOP, IMM, 2, 0, true},
	{0x83, symSAX, IDX, 6, 0, true},
	{0x84, symSTY, ZPG, 3, 0, false},
	{0x85, symSTA, ZPG, 3, 0, false},
	{0x86, symSTX, ZPG, 3, 0, false},
	{0x87, symSAX, ZPG, 3, 0, true},
	{0x88, symDEY, IMP, 2, 0, false},
	{0x89, symNOP, IMM, 2, 0, true},
	{0x8a, symTXA, IMP, 2, 0, false},
	{0x8b, symXAA, IMM, 2, 0, true},
	{0x8c, symSTY, ABS, 4, 0, false},
	{0x8d, symSTA, ABS, 4, 0, false},
	{0x8e, symSTX, ABS, 4, 0, false},
	{0x8f, symSAX, ABS, 4, 0, true},

	{0x90, symBCC, REL, 2, 0, false},
	{0x91, symSTA, IDY, 6, 0, false},
	{0x92, symJAM, IMP, 2, 0, true},
	{0x93, symSHA, IDY, 6, 0, true},
	{0x94, symSTY, ZPX, 4, 0, false},
	{0x95, symSTA, ZPX, 4, 0, false},
	{0x96, symSTX, ZPY, 4, 0, false},
	{0x97, symSAX, ZPY, 4, 0, true},
	{0x98, symTYA, IMP, 2, 0, false},
	{0x99, symSTA, ABY, 5, 0, false},
	{0x9a, symTXS, IMP, 2, 0, false},
	{0x9b, symTAS, ABY, 5, 0, true},
	{0x9c, symSHY, ABX, 5, 0, true},
	{0x9d, symSTA, ABX, 5, 0, false},
	{0x9e, symSHX, ABY, 5, 0, true},
	{0x9f, symSHA, ABY, 5, 0, true},

	{0xa0, symLDY, IMM, 2, 0, false},
	{0xa1, symLDA, IDX, 6, 0, false},
	{0xa2, symLDX, IMM, 2, 0, false},
	{0xa3, symLAX, IDX, 6, 0, true},
	{0xa4, symLDY, ZPG, 3, 0, false},
	{0xa5, symLDA, ZPG, 3, 0, false},
	{0xa6, symLDX, ZPG, 3, 0, false},
	{0xa7, symLAX, ZPG, 3, 0, true},
	{0xa8, symTAY, IMP, 2, 0, false},
	{0xa9, symLDA, IMM, 2, 0, false},
	{0xaa, symTAX, IMP, 2, 0, false},
	{0xab, symLXA, IMM, 2, 0, true},
	{0xac, symLDY, ABS, 4, 0, false},
	{0xad, symLDA, ABS, 4, 0, false},
	{0xae, symLDX, ABS, 4, 0, false},
	{0xaf, symLAX, ABS, 4, 0, true},

	{0xb0, symBCS, REL, 2, 0, false},
	{0xb1, symLDA, IDY, 5, 1, false},
	{0xb2, symJAM, IMP, 2, 0, true},
	{0xb3, symLAX, IDY, 5, 1, true},
	{0xb4, symLDY, ZPX, 4, 0, false},
	{0xb5, symLDA, ZPX, 4, 0, false},
	{0xb6, symLDX, ZPY, 4, 0, false},
	{0xb7, symLAX, ZPY, 4, 0, true},
	{0xb8, symCLV, IMP, 2, 0, false},
	{0xb9, symLDA, ABY, 4, 1, false},
	{0xba, symTSX, IMP, 2, 0, false},
	{0xbb, symLAS, ABY, 4, 1, true},
	{0xbc, symLDY, ABX, 4, 1, false},
	{0xbd, symLDA, ABX, 4, 1, false},
	{0xbe, symLDX, ABY, 4, 1, false},
	{0xbf, symLAX, ABY, 4, 1, true},

	{0xc0, symCPY, IMM, 2, 0, false},
	{0xc1, symCMP, IDX, 6, 0, false},
	{0xc2, symNOP, IMM, 2, 0, true},
	{0xc3, symDCP, IDX, 8, 0, true},
	{0xc4, symCPY, ZPG, 3, 0, false},
	{0xc5, symCMP, ZPG, 3, 0, false},
	{0xc6, symDEC, ZPG, 5, 0, false},
	{0xc7, symDCP, ZPG, 5, 0, true},
	{0xc8, symINY, IMP, 2, 0, false},
	{0xc9, symCMP, IMM, 2, 0, false},
	{0xca, symDEX, IMP, 2, 0, false},
	{0xcb, symAXS, IMM, 2, 0, true},
	{0xcc, symCPY, ABS, 4, 0, false},
	{0xcd, symCMP, ABS, 4, 0, false},
	{0xce, symDEC, ABS, 6, 0, false},
	{0xcf, symDCP, ABS, 6, 0, true},

	{0xd0, symBNE, REL, 2, 0, false},
	{0xd1, symCMP, IDY, 5, 1, false},
	{0xd2, symJAM, IMP, 2, 0, true},
	{0xd3, symDCP, IDY, 8, 0, true},
	{0xd4, symNOP, ZPX, 4, 0, true},
	{0xd5, symCMP, ZPX, 4, 0, false},
	{0xd6, symDEC, ZPX, 6, 0, false},
	{0xd7, symDCP, ZPX, 6, 0, true},
	{0xd8, symCLD, IMP, 2, 0, false},
	{0xd9, symCMP, ABY, 4, 1, false},
	{0xda, symNOP, IMP, 2, 0, true},
	{0xdb, symDCP, ABY, 7, 0, true},
	{0xdc, symNOP, ABX, 4, 1, true},
	{0xdd, symCMP, ABX, 4, 1, false},
	{0xde, symDEC, ABX, 7, 0, false},
	{0xdf, symDCP, ABX, 7, 0, true},

	{0xe0, symCPX, IMM, 2, 0, false},
	{0xe1, symSBC, IDX, 6, 0, false},
	{0xe2, symNOP, IMM, 2, 0, true},
	{0xe3, symISB, IDX, 8, 0, true},
	{0xe4, symCPX, ZPG, 3, 0, false},
	{0xe5, symSBC, ZPG, 3, 0, false},
	{0xe6, symINC, ZPG, 5, 0, false},
	{0xe7, symISB, ZPG, 5, 0, true},
	{0xe8, symINX, IMP, 2, 0, false},
	{0xe9, symSBC, IMM, 2, 0, false},
	{0xea, symNOP, IMP, 2, 0, false},
	{0xeb, symSBC, IMM, 2, 0, true},
	{0xec, symCPX, ABS, 4, 0, false},
	{0xed, symSBC, ABS, 4, 0, false},
	{0xee, symINC, ABS, 6, 0, false},
	{0xef, symISB, ABS, 6, 0, true},

	{0xf0, symBEQ, REL, 2, 0, false},
	{0xf1, symSBC, IDY, 5, 1, false},
	{0xf2, symJAM, IMP, 2, 0, true},
	{0xf3, symISB, IDY, 8, 0, true},
	{0xf4, symNOP, ZPX, 4, 0, true},
	{0xf5, symSBC, ZPX, 4, 0, false},
	{0xf6, symINC, ZPX, 6, 0, false},
	{0xf7, symISB, ZPX, 6, 0, true},
	{0xf8, symSED, IMP, 2, 0, false},
	{0xf9, symSBC, ABY, 4, 1, false},
	{0xfa, symNOP, IMP, 2, 0, true},
	{0xfb, symISB, ABY, 7, 0, true},
	{0xfc, symNOP, ABX, 4, 1, true},
	{0xfd, symSBC, ABX, 4, 1, false},
	{0xfe, symINC, ABX, 7, 0, false},
	{0xff, symISB, ABX, 7, 0, true},
}

// An Instruction describes a CPU instruction, including its name,
// its addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name       string   // all-caps name of the instruction
	Mode       Mode     // addressing mode
	Opcode     byte     // hexadecimal opcode value
	Length     byte     // combined size of opcode and operand, in bytes
	Cycles     byte     // number of CPU cycles to execute the instruction
	BPCycles   byte     // additional cycles required if boundary page crossed
	Unofficial bool     // outside the documented instruction set
	sym        opsym    // internal symbol
	fn         instfunc // emulator implementation of the function
}

// An InstructionSet defines the set of all possible instructions that
// can run on the emulated CPU.
type InstructionSet struct {
	Unofficial   UnofficialMode
	instructions [256]Instruction
	variants     map[string][]*Instruction // instructions indexed by name
}

// Lookup retrieves a CPU instruction corresponding to the requested opcode.
// Every opcode value resolves to an instruction.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// GetInstructions returns all CPU instructions whose name matches the
// provided string.
func (s *InstructionSet) GetInstructions(name string) []*Instruction {
	return s.variants[name]
}

// Create an instruction set for the requested unofficial opcode policy.
func newInstructionSet(mode UnofficialMode) *InstructionSet {
	set := &InstructionSet{
		Unofficial: mode,
		variants:   make(map[string][]*Instruction),
	}

	// Create a map from symbol to implementation for fast lookups.
	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	for _, d := range data {
		impl := symToImpl[d.sym]
		inst := &set.instructions[d.opcode]
		inst.Name = impl.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = modeLength[d.mode]
		inst.Cycles = d.cycles
		inst.BPCycles = d.bpcycles
		inst.Unofficial = d.unofficial
		inst.sym = d.sym
		inst.fn = impl.fn

		if d.unofficial {
			switch mode {
			case UnofficialNOP:
				inst.fn = (*CPU).skip
			case UnofficialStrict:
				inst.fn = nil
			}
		}

		set.variants[inst.Name] = append(set.variants[inst.Name], inst)
	}

	return set
}

var instructionSets [3]*InstructionSet

func init() {
	for _, mode := range []UnofficialMode{UnofficialEmulate, UnofficialNOP, UnofficialStrict} {
		instructionSets[mode] = newInstructionSet(mode)
	}
}

// GetInstructionSet returns the instruction set for the requested
// unofficial opcode policy.
func GetInstructionSet(mode UnofficialMode) *InstructionSet {
	return instructionSets[mode]
}
