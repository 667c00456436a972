// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Bits of the accumulator that leak into XAA and LXA results. The value
// varies between chips; $EE matches the common 2A03 behavior.
const unstableMagic = 0xee

// Skip an unofficial opcode, consuming its length and cycles only.
func (cpu *CPU) skip(inst *Instruction, operand []byte) {
}

// AND immediate, then Logical Shift Right the accumulator
func (cpu *CPU) alr(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.shiftRight(cpu.Reg.A & cpu.read(inst, operand))
}

// AND immediate, copying the sign into Carry
func (cpu *CPU) anc(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Carry = cpu.Reg.Sign
}

// AND immediate, then Rotate Right the accumulator. Carry and overflow
// come from bits 6 and 5 of the result.
func (cpu *CPU) arr(inst *Instruction, operand []byte) {
	v := cpu.Reg.A & cpu.read(inst, operand)
	v = (v >> 1) | byte(boolToUint32(cpu.Reg.Carry)<<7)
	cpu.Reg.A = v
	cpu.updateNZ(v)
	cpu.Reg.Carry = ((v & 0x40) != 0)
	cpu.Reg.Overflow = (((v >> 6) ^ (v >> 5)) & 1) != 0
}

// X = (A AND X) - immediate, without borrow
func (cpu *CPU) axs(inst *Instruction, operand []byte) {
	ax := cpu.Reg.A & cpu.Reg.X
	v := cpu.read(inst, operand)
	cpu.Reg.Carry = (ax >= v)
	cpu.Reg.X = ax - v
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement memory, then Compare to accumulator
func (cpu *CPU) dcp(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.load(op) - 1
	cpu.store(op, v)
	cpu.compare(cpu.Reg.A, v)
}

// Increment memory, then Subtract with Carry
func (cpu *CPU) isb(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.load(op) + 1
	cpu.store(op, v)
	cpu.subtract(v)
}

// Halt the CPU. The program counter stays on the opcode.
func (cpu *CPU) jam(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.LastPC
	cpu.jammed = true
}

// Load A, X and SP with memory AND SP
func (cpu *CPU) las(inst *Instruction, operand []byte) {
	v := cpu.read(inst, operand) & cpu.Reg.SP
	cpu.Reg.A, cpu.Reg.X, cpu.Reg.SP = v, v, v
	cpu.updateNZ(v)
}

// Load Accumulator and X register
func (cpu *CPU) lax(inst *Instruction, operand []byte) {
	v := cpu.read(inst, operand)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.updateNZ(v)
}

// Load Accumulator and X register from (A OR magic) AND immediate
func (cpu *CPU) lxa(inst *Instruction, operand []byte) {
	v := (cpu.Reg.A | unstableMagic) & cpu.read(inst, operand)
	cpu.Reg.A, cpu.Reg.X = v, v
	cpu.updateNZ(v)
}

// Rotate Left memory, then AND with accumulator
func (cpu *CPU) rla(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.rotateLeft(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A &= v
	cpu.updateNZ(cpu.Reg.A)
}

// Rotate Right memory, then Add with Carry
func (cpu *CPU) rra(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.rotateRight(cpu.load(op))
	cpu.store(op, v)
	cpu.add(v)
}

// Store A AND X
func (cpu *CPU) sax(inst *Instruction, operand []byte) {
	cpu.store(cpu.address(inst, operand), cpu.Reg.A&cpu.Reg.X)
}

// Store A AND X AND (high byte of address + 1)
func (cpu *CPU) sha(inst *Instruction, operand []byte) {
	cpu.storeHigh(cpu.address(inst, operand), cpu.Reg.A&cpu.Reg.X)
}

// Store X AND (high byte of address + 1)
func (cpu *CPU) shx(inst *Instruction, operand []byte) {
	cpu.storeHigh(cpu.address(inst, operand), cpu.Reg.X)
}

// Store Y AND (high byte of address + 1)
func (cpu *CPU) shy(inst *Instruction, operand []byte) {
	cpu.storeHigh(cpu.address(inst, operand), cpu.Reg.Y)
}

// Shift Left memory, then OR with accumulator
func (cpu *CPU) slo(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.shiftLeft(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A |= v
	cpu.updateNZ(cpu.Reg.A)
}

// Shift Right memory, then XOR with accumulator
func (cpu *CPU) sre(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.shiftRight(cpu.load(op))
	cpu.store(op, v)
	cpu.Reg.A ^= v
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer A AND X to the stack pointer, then store SP AND (high byte of
// address + 1)
func (cpu *CPU) tas(inst *Instruction, operand []byte) {
	cpu.Reg.SP = cpu.Reg.A & cpu.Reg.X
	cpu.storeHigh(cpu.address(inst, operand), cpu.Reg.SP)
}

// Transfer X to A, then AND with immediate. Some accumulator bits leak
// through the magic constant.
func (cpu *CPU) xaa(inst *Instruction, operand []byte) {
	cpu.Reg.A = (cpu.Reg.A | unstableMagic) & cpu.Reg.X & cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Store 'v' AND (high byte of the unindexed address + 1). When indexing
// crossed a page, the stored value also replaces the high byte of the
// effective address.
func (cpu *CPU) storeHigh(op operand, v byte) {
	v &= byte(op.base>>8) + 1
	addr := op.addr
	if cpu.pageCrossed {
		addr = uint16(v)<<8 | (addr & 0x00ff)
	}
	cpu.storeByte(addr, v)
}
