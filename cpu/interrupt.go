// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strings"

// Interrupt vectors
const (
	VectorNMI   = 0xfffa
	VectorReset = 0xfffc
	VectorIRQ   = 0xfffe
	VectorBRK   = 0xfffe
)

// Interrupt is a bitmask of interrupt requests.
type Interrupt byte

// Interrupt requests, in priority order.
const (
	InterruptReset Interrupt = 1 << iota
	InterruptNMI
	InterruptIRQ
)

func (i Interrupt) String() string {
	var names []string
	if i&InterruptReset != 0 {
		names = append(names, "RESET")
	}
	if i&InterruptNMI != 0 {
		names = append(names, "NMI")
	}
	if i&InterruptIRQ != 0 {
		names = append(names, "IRQ")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// State describes what the CPU did during its most recent step.
type State byte

// Interrupt controller states
const (
	Running State = iota
	Reset
	ServicingNMI
	ServicingIRQ
)

var stateNames = [...]string{
	Running:      "running",
	Reset:        "reset",
	ServicingNMI: "servicing NMI",
	ServicingIRQ: "servicing IRQ",
}

func (s State) String() string {
	return stateNames[s]
}

// Reset requests a reset. It is serviced at the next instruction boundary
// and takes priority over every other request.
func (cpu *CPU) Reset() {
	cpu.resetPending = true
}

// SetNMILine sets the level of the NMI input. A request is latched when
// the line goes from inactive to asserted. The latched request survives
// the line being released.
func (cpu *CPU) SetNMILine(asserted bool) {
	if asserted && !cpu.nmiLine {
		cpu.nmiPending = true
	}
	cpu.nmiLine = asserted
}

// TriggerNMI latches a non-maskable interrupt request without touching
// the NMI input line.
func (cpu *CPU) TriggerNMI() {
	cpu.nmiPending = true
}

// SetIRQLine sets the level of the IRQ input. A maskable interrupt is
// requested for as long as the line stays asserted.
func (cpu *CPU) SetIRQLine(asserted bool) {
	cpu.irqLine = asserted
}

// Pending returns the interrupt requests waiting to be serviced. An
// asserted IRQ line is reported even while the interrupt disable flag
// masks it.
func (cpu *CPU) Pending() Interrupt {
	var i Interrupt
	if cpu.resetPending {
		i |= InterruptReset
	}
	if cpu.nmiPending {
		i |= InterruptNMI
	}
	if cpu.irqLine {
		i |= InterruptIRQ
	}
	return i
}

// State returns the interrupt controller state of the most recent step.
func (cpu *CPU) State() State {
	return cpu.state
}

// Jammed returns true if a JAM opcode has halted the CPU.
func (cpu *CPU) Jammed() bool {
	return cpu.jammed
}

// Service the highest priority pending interrupt, if any. Only one
// interrupt is serviced per step.
func (cpu *CPU) serviceInterrupt() (cycles int, serviced bool) {
	switch {
	case cpu.resetPending:
		cpu.resetPending = false
		cpu.jammed = false
		cpu.Reg.SP = PowerOnSP
		cpu.Reg.InterruptDisable = true
		cpu.Reg.PC = cpu.loadAddress(VectorReset)
		cpu.state = Reset
		cycles = ResetCycles

	case cpu.jammed:
		return 0, false

	case cpu.nmiPending:
		cpu.nmiPending = false
		cpu.handleInterrupt(false, VectorNMI)
		cpu.state = ServicingNMI
		cycles = InterruptCycles

	case cpu.irqLine && !cpu.irqMasked():
		cpu.handleInterrupt(false, VectorIRQ)
		cpu.state = ServicingIRQ
		cycles = InterruptCycles

	default:
		return 0, false
	}

	cpu.irqDelayed = false
	return cycles, true
}

// Report whether IRQs are masked at this instruction boundary. CLI, SEI
// and PLP change the interrupt disable flag too late for the poll that
// follows them, so the poll uses the flag from before the instruction.
func (cpu *CPU) irqMasked() bool {
	if cpu.irqDelayed {
		return cpu.delayedMask
	}
	return cpu.Reg.InterruptDisable
}

// Record the IRQ mask seen by the next poll after an instruction has
// executed.
func (cpu *CPU) updateIRQPoll(inst *Instruction, prevMask bool) {
	switch inst.sym {
	case symCLI, symSEI, symPLP:
		cpu.irqDelayed = true
		cpu.delayedMask = prevMask
	default:
		cpu.irqDelayed = false
	}
}

// Handle an interrupt by storing the program counter and status flags on
// the stack. Then switch the program counter to the requested address.
func (cpu *CPU) handleInterrupt(brk bool, addr uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(brk))
	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = cpu.loadAddress(addr)
}
