// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Cycle costs that are not carried by the opcode table.
const (
	InterruptCycles       = 7 // NMI and IRQ entry sequence
	ResetCycles           = 7 // reset sequence
	BranchTakenCycles     = 1 // branch condition satisfied
	BranchPageCrossCycles = 1 // taken branch lands on another page
)

// Opcodes whose indexed addressing always costs the page-cross cycle,
// whether or not a page is crossed. Their base cycle count in the opcode
// table already includes it, and their BPCycles is zero. Stores and
// read-modify-write instructions must finish computing the effective
// address before writing, so they never take the shortcut.
var fixedIndexPenalty = [...]byte{
	// STA abs,X / abs,Y / (zp),Y
	0x9d, 0x99, 0x91,
	// ASL ROL LSR ROR DEC INC abs,X
	0x1e, 0x3e, 0x5e, 0x7e, 0xde, 0xfe,
	// SHA SHX SHY TAS
	0x93, 0x9f, 0x9e, 0x9c, 0x9b,
	// SLO RLA SRE RRA DCP ISB (zp),Y / abs,Y / abs,X
	0x13, 0x1b, 0x1f,
	0x33, 0x3b, 0x3f,
	0x53, 0x5b, 0x5f,
	0x73, 0x7b, 0x7f,
	0xd3, 0xdb, 0xdf,
	0xf3, 0xfb, 0xff,
}

// FixedIndexPenalty reports whether the opcode always pays the indexed
// addressing penalty.
func FixedIndexPenalty(opcode byte) bool {
	for _, op := range fixedIndexPenalty {
		if op == opcode {
			return true
		}
	}
	return false
}

// Return the number of cycles consumed by the instruction just executed,
// including addressing and branch penalties.
func (cpu *CPU) instructionCycles(inst *Instruction) int {
	cycles := int(inst.Cycles) + cpu.deltaCycles
	if cpu.pageCrossed {
		cycles += int(inst.BPCycles)
	}
	return cycles
}

// Charge the branch penalties for a taken branch from 'from' to 'to'.
func (cpu *CPU) chargeBranch(from, to uint16) {
	cpu.deltaCycles += BranchTakenCycles
	if (from & 0xff00) != (to & 0xff00) {
		cpu.deltaCycles += BranchPageCrossCycles
	}
}
