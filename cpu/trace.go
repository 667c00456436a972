// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// A Snapshot captures the CPU state at an instruction boundary together
// with the decoded instruction about to execute.
type Snapshot struct {
	Reg     Registers    // register contents
	PS      byte         // processor status as pushed by an interrupt
	Cycles  uint64       // total cycles executed so far
	Pending Interrupt    // outstanding interrupt requests
	Inst    *Instruction // instruction at Reg.PC
	Bytes   [3]byte      // instruction bytes; the first Inst.Length are valid
}

// InstBytes returns the bytes of the instruction at the snapshot's
// program counter.
func (s *Snapshot) InstBytes() []byte {
	return s.Bytes[:s.Inst.Length]
}

// Operand returns the instruction operand as a 16-bit value. One-byte
// operands are zero-extended.
func (s *Snapshot) Operand() uint16 {
	switch s.Inst.Length {
	case 2:
		return uint16(s.Bytes[1])
	case 3:
		return uint16(s.Bytes[1]) | uint16(s.Bytes[2])<<8
	default:
		return 0
	}
}

// Snapshot returns the current CPU state and the decoded instruction at
// the program counter. Instruction bytes are read with Peek, so buses that
// map registers with read side effects should implement Peeker.
func (cpu *CPU) Snapshot() Snapshot {
	s := Snapshot{
		Reg:     cpu.Reg,
		PS:      cpu.Reg.SavePS(false),
		Cycles:  cpu.Cycles,
		Pending: cpu.Pending(),
	}
	s.Bytes[0] = cpu.Peek(cpu.Reg.PC)
	s.Inst = cpu.InstSet.Lookup(s.Bytes[0])
	for i := 1; i < int(s.Inst.Length); i++ {
		s.Bytes[i] = cpu.Peek(cpu.Reg.PC + uint16(i))
	}
	return s
}

// A Tracer receives a snapshot before every instruction the CPU executes.
// Interrupt service steps are not traced.
type Tracer interface {
	Trace(s *Snapshot)
}

// TracerFunc adapts an ordinary function to the Tracer interface.
type TracerFunc func(s *Snapshot)

// Trace calls f(s).
func (f TracerFunc) Trace(s *Snapshot) {
	f(s)
}

// AttachTracer attaches a tracer to the CPU. A nil tracer disables
// tracing.
func (cpu *CPU) AttachTracer(t Tracer) {
	cpu.tracer = t
}
