// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes

import (
	"context"

	"github.com/famiclone/go2a03/cpu"
)

// A Subsystem is a console chip that runs in lockstep with the CPU. After
// every CPU step it is ticked by the number of CPU cycles the step took.
type Subsystem interface {
	Tick(cycles int)
}

// An NMISource is a subsystem that drives the NMI line.
type NMISource interface {
	NMILine() bool
}

// An IRQSource is a subsystem that drives the shared IRQ line.
type IRQSource interface {
	IRQLine() bool
}

// Console owns the bus and the CPU and drives the master loop.
type Console struct {
	CPU        *cpu.CPU
	Bus        *Bus
	subsystems []Subsystem
	extNMI     bool
	extIRQ     bool
}

// NewConsole creates a console whose CPU uses the given configuration.
// The video and I/O windows are backed by plain register files and
// cartridge space by a flat writable cartridge.
func NewConsole(config cpu.Config) *Console {
	bus := NewBus()
	bus.AttachPPU(NewRegisterFile(PPURegisters))
	bus.AttachIO(NewRegisterFile(IORegisters))
	bus.AttachCartridge(NewFlatCartridge())

	return &Console{
		CPU: cpu.NewCPU(config, bus),
		Bus: bus,
	}
}

// Attach adds a subsystem to the master loop. Subsystems that are also
// NMISources or IRQSources drive the CPU's interrupt lines.
func (c *Console) Attach(s Subsystem) {
	c.subsystems = append(c.subsystems, s)
}

// SetNMILine drives the NMI line from outside the console, alongside any
// attached NMI sources.
func (c *Console) SetNMILine(asserted bool) {
	c.extNMI = asserted
	c.sampleLines()
}

// SetIRQLine drives the IRQ line from outside the console, alongside any
// attached IRQ sources.
func (c *Console) SetIRQLine(asserted bool) {
	c.extIRQ = asserted
	c.sampleLines()
}

// IRQLine returns the externally driven IRQ level.
func (c *Console) IRQLine() bool {
	return c.extIRQ
}

// Reset requests a CPU reset.
func (c *Console) Reset() {
	c.CPU.Reset()
}

// LoadProgram copies a program into memory at addr, points the reset
// vector at it and requests a reset.
func (c *Console) LoadProgram(addr uint16, prog []byte) {
	c.Bus.StoreBytes(addr, prog)
	c.Bus.StoreBytes(cpu.VectorReset, []byte{byte(addr), byte(addr >> 8)})
	c.CPU.Reset()
}

// Step advances the CPU by one instruction or interrupt service, then
// ticks every subsystem by the cycles consumed and samples the interrupt
// lines for the next step.
func (c *Console) Step() (int, error) {
	n, err := c.CPU.Step()
	for _, s := range c.subsystems {
		s.Tick(n)
	}
	c.sampleLines()
	return n, err
}

// Run steps the console until at least 'cycles' CPU cycles have elapsed,
// the context is done, or a step fails. It also returns early when a step
// consumes no cycles without failing, which happens when an attached BRK
// handler stops the CPU on a BRK instruction. It returns the number of
// cycles that elapsed.
func (c *Console) Run(ctx context.Context, cycles uint64) (uint64, error) {
	var elapsed uint64
	for elapsed < cycles {
		select {
		case <-ctx.Done():
			return elapsed, ctx.Err()
		default:
		}

		n, err := c.Step()
		elapsed += uint64(n)
		if err != nil {
			return elapsed, err
		}
		if n == 0 {
			return elapsed, nil
		}
	}
	return elapsed, nil
}

func (c *Console) sampleLines() {
	nmi, irq := c.extNMI, c.extIRQ
	for _, s := range c.subsystems {
		if src, ok := s.(NMISource); ok && src.NMILine() {
			nmi = true
		}
		if src, ok := s.(IRQSource); ok && src.IRQLine() {
			irq = true
		}
	}
	c.CPU.SetNMILine(nmi)
	c.CPU.SetIRQLine(irq)
}
