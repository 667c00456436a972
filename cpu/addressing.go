// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

type operandKind byte

const (
	operandImplied operandKind = iota
	operandImmediate
	operandAccumulator
	operandMemory
)

// An operand is the result of resolving an instruction's addressing mode.
type operand struct {
	kind  operandKind
	value byte   // immediate value
	addr  uint16 // effective address
	base  uint16 // address before indexing
}

// Fetch the operand bytes that follow the opcode and advance the program
// counter past them.
func (cpu *CPU) fetchOperand(buf []byte) []byte {
	for i := range buf {
		buf[i] = cpu.Mem.LoadByte(cpu.Reg.PC)
		cpu.Reg.PC++
	}
	return buf
}

// Resolve the instruction operand bytes into an operand location using
// the addressing mode. The program counter must already point past the
// instruction. Indexed modes record whether indexing crossed a page.
func (cpu *CPU) resolve(mode Mode, b []byte) operand {
	switch mode {
	case IMP:
		return operand{kind: operandImplied}
	case ACC:
		return operand{kind: operandAccumulator}
	case IMM:
		return operand{kind: operandImmediate, value: b[0]}
	case ZPG:
		addr := uint16(b[0])
		return operand{kind: operandMemory, addr: addr, base: addr}
	case ZPX:
		return operand{kind: operandMemory, addr: offsetZeroPage(b[0], cpu.Reg.X), base: uint16(b[0])}
	case ZPY:
		return operand{kind: operandMemory, addr: offsetZeroPage(b[0], cpu.Reg.Y), base: uint16(b[0])}
	case ABS:
		addr := le16(b)
		return operand{kind: operandMemory, addr: addr, base: addr}
	case ABX:
		return cpu.indexed(le16(b), cpu.Reg.X)
	case ABY:
		return cpu.indexed(le16(b), cpu.Reg.Y)
	case IND:
		// The pointer's high byte is fetched from the same page as its low
		// byte, so ($10FF) reads $10FF and $1000.
		ptr := le16(b)
		lo := cpu.Mem.LoadByte(ptr)
		hi := cpu.Mem.LoadByte(samePageNext(ptr))
		return operand{kind: operandMemory, addr: uint16(lo) | uint16(hi)<<8, base: ptr}
	case IDX:
		zp := b[0] + cpu.Reg.X
		lo := cpu.Mem.LoadByte(uint16(zp))
		hi := cpu.Mem.LoadByte(uint16(zp + 1))
		addr := uint16(lo) | uint16(hi)<<8
		return operand{kind: operandMemory, addr: addr, base: addr}
	case IDY:
		zp := b[0]
		lo := cpu.Mem.LoadByte(uint16(zp))
		hi := cpu.Mem.LoadByte(uint16(zp + 1))
		return cpu.indexed(uint16(lo)|uint16(hi)<<8, cpu.Reg.Y)
	case REL:
		addr := cpu.Reg.PC + uint16(int8(b[0]))
		return operand{kind: operandMemory, addr: addr, base: cpu.Reg.PC}
	default:
		panic("invalid addressing mode")
	}
}

func (cpu *CPU) indexed(base uint16, index byte) operand {
	addr, crossed := offsetAddress(base, index)
	cpu.pageCrossed = crossed
	return operand{kind: operandMemory, addr: addr, base: base}
}

// Resolve an instruction's operand.
func (cpu *CPU) address(inst *Instruction, b []byte) operand {
	return cpu.resolve(inst.Mode, b)
}

// Load a byte value from a resolved operand.
func (cpu *CPU) load(op operand) byte {
	switch op.kind {
	case operandImmediate:
		return op.value
	case operandAccumulator:
		return cpu.Reg.A
	case operandMemory:
		return cpu.Mem.LoadByte(op.addr)
	default:
		panic("instruction has no operand")
	}
}

// Resolve an instruction's operand and load the byte value it refers to.
func (cpu *CPU) read(inst *Instruction, b []byte) byte {
	return cpu.load(cpu.resolve(inst.Mode, b))
}

// Store a byte value to a resolved operand.
func (cpu *CPU) store(op operand, v byte) {
	switch op.kind {
	case operandAccumulator:
		cpu.Reg.A = v
	case operandMemory:
		cpu.storeByte(op.addr, v)
	default:
		panic("instruction operand is not writable")
	}
}

// Convert a 2-byte little-endian operand into an address.
func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
