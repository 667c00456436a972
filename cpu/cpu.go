// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the Ricoh 2A03 CPU core, an NMOS 6502 without
// BCD arithmetic, at instruction and cycle granularity.
package cpu

// BrkHandler is an interface implemented by types that wish to be notified
// when a BRK instruction is about to be executed.
type BrkHandler interface {
	OnBrk(cpu *CPU)
}

// CPU represents a single 2A03 CPU. It holds a reference to the bus it
// reads and writes through, but the bus is owned by the caller.
type CPU struct {
	Config      Config          // construction-time options
	Reg         Registers       // CPU registers
	Mem         Bus             // assigned memory bus
	Cycles      uint64          // total executed CPU cycles
	LastCycles  int             // cycles consumed by the last step
	LastPC      uint16          // address of the last executed instruction
	InstSet     *InstructionSet // Instruction set used by the CPU
	pageCrossed bool
	deltaCycles int

	state        State
	resetPending bool
	nmiLine      bool
	nmiPending   bool
	irqLine      bool
	irqDelayed   bool
	delayedMask  bool
	jammed       bool

	debugger   *Debugger
	brkHandler BrkHandler
	tracer     Tracer
}

// NewCPU creates an emulated CPU bound to the specified memory bus. The
// registers hold their power-on values and no interrupt is pending; call
// Reset to start execution from the reset vector.
func NewCPU(config Config, m Bus) *CPU {
	cpu := &CPU{
		Config:  config,
		Mem:     m,
		InstSet: GetInstructionSet(config.Unofficial),
	}

	cpu.Reg.Init()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	return cpu.InstSet.Lookup(cpu.Peek(addr))
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	inst := cpu.GetInstruction(addr)
	return addr + uint16(inst.Length)
}

// Peek returns the byte at addr without side effects when the bus
// supports it. Otherwise it performs a normal load.
func (cpu *CPU) Peek(addr uint16) byte {
	if p, ok := cpu.Mem.(Peeker); ok {
		return p.PeekByte(addr)
	}
	return cpu.Mem.LoadByte(addr)
}

// Step services one pending interrupt or executes one instruction, and
// returns the number of cycles consumed.
//
// In strict mode an unofficial opcode returns an *UnofficialOpcodeError
// without executing anything. A JAM opcode halts the CPU, and every step
// returns ErrJammed until the CPU is reset.
func (cpu *CPU) Step() (int, error) {
	cycles, err := cpu.step()
	cpu.LastCycles = cycles
	cpu.Cycles += uint64(cycles)
	return cycles, err
}

func (cpu *CPU) step() (int, error) {
	if cycles, ok := cpu.serviceInterrupt(); ok {
		return cycles, nil
	}
	if cpu.jammed {
		return 0, ErrJammed
	}
	cpu.state = Running

	if cpu.tracer != nil {
		s := cpu.Snapshot()
		cpu.tracer.Trace(&s)
	}

	// Grab the next opcode at the current PC
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)

	// Look up the instruction data for the opcode
	inst := cpu.InstSet.Lookup(opcode)
	if inst.fn == nil {
		return 0, &UnofficialOpcodeError{Opcode: opcode, Addr: cpu.Reg.PC}
	}

	// If a BRK instruction is about to be executed and a BRK handler has been
	// installed, call the BRK handler instead of executing the instruction.
	if inst.Opcode == 0x00 && cpu.brkHandler != nil {
		cpu.brkHandler.OnBrk(cpu)
		return 0, nil
	}

	// Fetch the operand (if any) and advance the PC
	cpu.LastPC = cpu.Reg.PC
	cpu.Reg.PC++
	var buf [2]byte
	operand := cpu.fetchOperand(buf[:inst.Length-1])

	// Execute the instruction
	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	prevMask := cpu.Reg.InterruptDisable
	inst.fn(cpu, inst, operand)
	cpu.updateIRQPoll(inst, prevMask)

	cycles := cpu.instructionCycles(inst)
	if cpu.jammed {
		return cycles, ErrJammed
	}

	// Update the debugger so it handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}
	return cycles, nil
}

// AttachBrkHandler attaches a handler that is called whenever the BRK
// instruction is executed.
func (cpu *CPU) AttachBrkHandler(handler BrkHandler) {
	cpu.brkHandler = handler
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
}

// DetachDebugger detaches the currently debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) storeByte(addr uint16, v byte) {
	if cpu.debugger != nil {
		cpu.debugger.onDataStore(cpu, addr, v)
	}
	cpu.Mem.StoreByte(addr, v)
}

// Load a little-endian 16-bit value from 'addr' and 'addr'+1.
func (cpu *CPU) loadAddress(addr uint16) uint16 {
	lo := cpu.Mem.LoadByte(addr)
	hi := cpu.Mem.LoadByte(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Execute a branch to the resolved relative operand if 'cond' holds.
func (cpu *CPU) branch(cond bool, inst *Instruction, b []byte) {
	target := cpu.address(inst, b).addr
	if cond {
		cpu.chargeBranch(cpu.Reg.PC, target)
		cpu.Reg.PC = target
	}
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// Add 'v' and the carry to the accumulator.
func (cpu *CPU) add(v byte) {
	if !(cpu.Config.Decimal && cpu.Reg.Decimal) {
		cpu.addBinary(v)
		return
	}

	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	lo := (acc & 0x0f) + (add & 0x0f) + carry
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}
	r := (acc & 0xf0) + (add & 0xf0) + lo

	// NMOS parts take Z from the binary sum and N/V from the result
	// before the high nibble is adjusted.
	cpu.Reg.Zero = byte(acc+add+carry) == 0
	cpu.Reg.Sign = (r & 0x80) != 0
	cpu.Reg.Overflow = ((acc^r)&0x80) != 0 && ((acc^add)&0x80) == 0

	if r >= 0xa0 {
		r += 0x60
	}
	cpu.Reg.Carry = (r >= 0x100)
	cpu.Reg.A = byte(r)
}

// Add 'v' and the carry to the accumulator, ignoring the decimal flag.
func (cpu *CPU) addBinary(v byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	r := acc + add + boolToUint32(cpu.Reg.Carry)

	cpu.Reg.Carry = (r >= 0x100)
	cpu.Reg.Overflow = ((acc^r)&(add^r)&0x80) != 0
	cpu.Reg.A = byte(r)
	cpu.updateNZ(cpu.Reg.A)
}

// Subtract 'v' and the borrow from the accumulator.
func (cpu *CPU) subtract(v byte) {
	if !(cpu.Config.Decimal && cpu.Reg.Decimal) {
		cpu.addBinary(^v)
		return
	}

	acc := int32(cpu.Reg.A)
	sub := int32(v)
	borrow := 1 - int32(boolToUint32(cpu.Reg.Carry))

	lo := (acc & 0x0f) - (sub & 0x0f) - borrow
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}
	r := (acc & 0xf0) - (sub & 0xf0) + lo
	if r < 0 {
		r -= 0x60
	}

	// Every flag matches the binary subtraction.
	cpu.addBinary(^v)
	cpu.Reg.A = byte(r)
}

// Compare register value 'reg' to 'v'.
func (cpu *CPU) compare(reg, v byte) {
	cpu.Reg.Carry = (reg >= v)
	cpu.updateNZ(reg - v)
}

// Shift 'v' left one bit.
func (cpu *CPU) shiftLeft(v byte) byte {
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	v <<= 1
	cpu.updateNZ(v)
	return v
}

// Shift 'v' right one bit.
func (cpu *CPU) shiftRight(v byte) byte {
	cpu.Reg.Carry = ((v & 1) == 1)
	v >>= 1
	cpu.updateNZ(v)
	return v
}

// Rotate 'v' left one bit through the carry.
func (cpu *CPU) rotateLeft(v byte) byte {
	tmp := (v >> 7) & 1
	v = (v << 1) | byte(boolToUint32(cpu.Reg.Carry))
	cpu.Reg.Carry = (tmp == 1)
	cpu.updateNZ(v)
	return v
}

// Rotate 'v' right one bit through the carry.
func (cpu *CPU) rotateRight(v byte) byte {
	tmp := v & 1
	v = (v >> 1) | byte(boolToUint32(cpu.Reg.Carry)<<7)
	cpu.Reg.Carry = (tmp == 1)
	cpu.updateNZ(v)
	return v
}

// Add with Carry
func (cpu *CPU) adc(inst *Instruction, operand []byte) {
	cpu.add(cpu.read(inst, operand))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	cpu.store(op, cpu.shiftLeft(cpu.load(op)))
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, operand []byte) {
	cpu.branch(!cpu.Reg.Carry, inst, operand)
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, operand []byte) {
	cpu.branch(cpu.Reg.Carry, inst, operand)
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, operand []byte) {
	cpu.branch(cpu.Reg.Zero, inst, operand)
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, operand []byte) {
	v := cpu.read(inst, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
	cpu.Reg.Overflow = ((v & 0x40) != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, operand []byte) {
	cpu.branch(cpu.Reg.Sign, inst, operand)
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, operand []byte) {
	cpu.branch(!cpu.Reg.Zero, inst, operand)
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, operand []byte) {
	cpu.branch(!cpu.Reg.Sign, inst, operand)
}

// Break. The byte after the opcode is skipped as padding.
func (cpu *CPU) brk(inst *Instruction, operand []byte) {
	cpu.Reg.PC++
	cpu.handleInterrupt(true, VectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, operand []byte) {
	cpu.branch(!cpu.Reg.Overflow, inst, operand)
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, operand []byte) {
	cpu.branch(cpu.Reg.Overflow, inst, operand)
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = false
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = false
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = false
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, operand []byte) {
	cpu.Reg.Overflow = false
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.A, cpu.read(inst, operand))
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.X, cpu.read(inst, operand))
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.Y, cpu.read(inst, operand))
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.load(op) - 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, operand []byte) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, operand []byte) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, operand []byte) {
	cpu.Reg.A ^= cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	v := cpu.load(op) + 1
	cpu.updateNZ(v)
	cpu.store(op, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, operand []byte) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, operand []byte) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address. The indirect form reproduces the page wrap of
// the pointer's high byte.
func (cpu *CPU) jmp(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.address(inst, operand).addr
}

// Jump to subroutine
func (cpu *CPU) jsr(inst *Instruction, operand []byte) {
	addr := cpu.address(inst, operand).addr
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
}

// load Accumulator
func (cpu *CPU) lda(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// load the X register
func (cpu *CPU) ldx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.X)
}

// load the Y register
func (cpu *CPU) ldy(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	cpu.store(op, cpu.shiftRight(cpu.load(op)))
}

// No-operation. Forms with an operand still perform their read.
func (cpu *CPU) nop(inst *Instruction, operand []byte) {
	if inst.Mode != IMP {
		cpu.read(inst, operand)
	}
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, operand []byte) {
	cpu.Reg.A |= cpu.read(inst, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags
func (cpu *CPU) php(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	cpu.store(op, cpu.rotateLeft(cpu.load(op)))
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, operand []byte) {
	op := cpu.address(inst, operand)
	cpu.store(op, cpu.rotateRight(cpu.load(op)))
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, operand []byte) {
	cpu.Reg.RestorePS(cpu.pop())
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, operand []byte) {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// Subtract with Carry
func (cpu *CPU) sbc(inst *Instruction, operand []byte) {
	cpu.subtract(cpu.read(inst, operand))
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = true
}

// Set Decimal flag
func (cpu *CPU) sed(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = true
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = true
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, operand []byte) {
	cpu.store(cpu.address(inst, operand), cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, operand []byte) {
	cpu.store(cpu.address(inst, operand), cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, operand []byte) {
	cpu.store(cpu.address(inst, operand), cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer Stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the Stack pointer
func (cpu *CPU) txs(inst *Instruction, operand []byte) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}
