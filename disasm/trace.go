// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm

import (
	"fmt"
	"strings"

	"github.com/famiclone/go2a03/cpu"
)

// Trace formats a CPU snapshot as one line of a Nintendulator-style
// execution log, the format of the widely used nestest reference log:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Unofficial opcodes are marked with '*'. Operand annotations show the
// effective address and the value there, read from 'm' without side
// effects.
func Trace(s *cpu.Snapshot, m cpu.Peeker) string {
	var bytes []string
	for _, b := range s.InstBytes() {
		bytes = append(bytes, fmt.Sprintf("%02X", b))
	}

	marker := " "
	if s.Inst.Unofficial {
		marker = "*"
	}

	asm := s.Inst.Name
	if arg := annotate(s, m); arg != "" {
		asm += " " + arg
	}

	return fmt.Sprintf("%04X  %-8s %s%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		s.Reg.PC, strings.Join(bytes, " "), marker, asm,
		s.Reg.A, s.Reg.X, s.Reg.Y, s.PS, s.Reg.SP, s.Cycles)
}

// Describe the instruction operand along with the memory it refers to.
func annotate(s *cpu.Snapshot, m cpu.Peeker) string {
	r := &s.Reg
	op := s.Operand()
	zp := byte(op)

	peek16 := func(lo, hi uint16) uint16 {
		return uint16(m.PeekByte(lo)) | uint16(m.PeekByte(hi))<<8
	}

	switch s.Inst.Mode {
	case cpu.IMP:
		return ""
	case cpu.ACC:
		return "A"
	case cpu.IMM:
		return fmt.Sprintf("#$%02X", zp)
	case cpu.REL:
		return fmt.Sprintf("$%04X", branchTarget(r.PC, zp))
	case cpu.ZPG:
		return fmt.Sprintf("$%02X = %02X", zp, m.PeekByte(uint16(zp)))
	case cpu.ZPX:
		a := zp + r.X
		return fmt.Sprintf("$%02X,X @ %02X = %02X", zp, a, m.PeekByte(uint16(a)))
	case cpu.ZPY:
		a := zp + r.Y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", zp, a, m.PeekByte(uint16(a)))
	case cpu.ABS:
		if s.Inst.Name == "JMP" || s.Inst.Name == "JSR" {
			return fmt.Sprintf("$%04X", op)
		}
		return fmt.Sprintf("$%04X = %02X", op, m.PeekByte(op))
	case cpu.ABX:
		a := op + uint16(r.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", op, a, m.PeekByte(a))
	case cpu.ABY:
		a := op + uint16(r.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", op, a, m.PeekByte(a))
	case cpu.IND:
		hi := (op & 0xff00) | ((op + 1) & 0x00ff)
		return fmt.Sprintf("($%04X) = %04X", op, peek16(op, hi))
	case cpu.IDX:
		p := zp + r.X
		a := peek16(uint16(p), uint16(p+1))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", zp, p, a, m.PeekByte(a))
	case cpu.IDY:
		base := peek16(uint16(zp), uint16(zp+1))
		a := base + uint16(r.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, base, a, m.PeekByte(a))
	default:
		return ""
	}
}
