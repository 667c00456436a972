// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 2A03 instruction set disassembler and an
// execution trace formatter.
package disasm

import (
	"fmt"

	"github.com/famiclone/go2a03/cpu"
)

// Disassembler formatting for addressing modes
var modeFormat = []string{
	"#$%s",    // IMM
	"%s",      // IMP
	"$%s",     // REL
	"$%s",     // ZPG
	"$%s,X",   // ZPX
	"$%s,Y",   // ZPY
	"$%s",     // ABS
	"$%s,X",   // ABX
	"$%s,Y",   // ABY
	"($%s)",   // IND
	"($%s,X)", // IDX
	"($%s),Y", // IDY
	"A",       // ACC (unused)
}

var hex = "0123456789ABCDEF"

// Return a hexadecimal string representation of the little-endian byte
// slice, most significant byte first.
func hexString(b []byte) string {
	hexlen := len(b) * 2
	hexbuf := make([]byte, hexlen)
	j := hexlen - 1
	for _, n := range b {
		hexbuf[j] = hex[n&0xf]
		hexbuf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(hexbuf)
}

// Return the address targeted by a relative branch at 'addr'.
func branchTarget(addr uint16, offset byte) uint16 {
	return addr + 2 + uint16(int8(offset))
}

// Disassemble the machine code in memory 'm' at address 'addr' using the
// instruction set 'set'. Return a 'line' string representing the
// disassembled instruction and a 'next' address that starts the following
// line of machine code. Memory is read without side effects.
func Disassemble(m cpu.Peeker, set *cpu.InstructionSet, addr uint16) (line string, next uint16) {
	opcode := m.PeekByte(addr)
	inst := set.Lookup(opcode)

	var buf [2]byte
	operand := buf[:inst.Length-1]
	for i := range operand {
		operand[i] = m.PeekByte(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		// Convert relative offset to absolute address.
		braddr := branchTarget(addr, operand[0])
		operand = []byte{byte(braddr), byte(braddr >> 8)}
	}

	switch inst.Mode {
	case cpu.IMP:
		line = inst.Name
	case cpu.ACC:
		line = inst.Name + " A"
	default:
		format := "%s " + modeFormat[inst.Mode]
		line = fmt.Sprintf(format, inst.Name, hexString(operand))
	}
	next = addr + uint16(inst.Length)
	return line, next
}

// GetRegisterString returns a string describing the contents of the 2A03
// registers.
func GetRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=$%02X X=$%02X Y=$%02X PS=[%s] SP=$%02X PC=$%04X",
		r.A, r.X, r.Y, getStatusBits(r), r.SP, r.PC)
}

// GetCompactRegisterString returns a compact string describing the
// contents of the 2A03 registers. It excludes the program counter and
// stack pointer.
func GetCompactRegisterString(r *cpu.Registers) string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X PS=[%s]", r.A, r.X, r.Y, getStatusBits(r))
}

func getStatusBits(r *cpu.Registers) string {
	v := []bool{
		r.Sign,
		r.Overflow,
		true,
		false,
		r.Decimal,
		r.InterruptDisable,
		r.Zero,
		r.Carry,
	}

	s := []byte("NV-BDIZC")
	for i := range v {
		if !v[i] {
			s[i] = '-'
		}
	}
	return string(s)
}
