// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"maps"
	"slices"
)

// A Debugger watches the emulated CPU for execution and data breakpoints
// and reports hits to a BreakpointHandler.
type Debugger struct {
	breakpointHandler BreakpointHandler
	breakpoints       map[uint16]*Breakpoint
	dataBreakpoints   map[uint16]*DataBreakpoint
}

// The BreakpointHandler interface should be implemented by any object that
// wishes to receive debugger breakpoint notifications.
type BreakpointHandler interface {
	OnBreakpoint(cpu *CPU, b *Breakpoint)
	OnDataBreakpoint(cpu *CPU, b *DataBreakpoint)
}

// A Breakpoint represents an address that will cause the debugger to stop
// code execution when the program counter reaches it.
type Breakpoint struct {
	Address  uint16 // address of execution breakpoint
	Disabled bool   // this breakpoint is currently disabled
	StepOver bool   // this breakpoint is a temporary step-over breakpoint
}

// A DataBreakpoint represents an address that will cause the debugger to
// stop executing code when a byte is stored to it.
type DataBreakpoint struct {
	Address     uint16 // breakpoint triggered by stores to this address
	Disabled    bool   // this breakpoint is currently disabled
	Conditional bool   // this breakpoint is conditional on a certain Value being stored
	Value       byte   // the value that must be stored if the breakpoint is conditional
}

// NewDebugger creates a new CPU debugger.
func NewDebugger(breakpointHandler BreakpointHandler) *Debugger {
	return &Debugger{
		breakpointHandler: breakpointHandler,
		breakpoints:       make(map[uint16]*Breakpoint),
		dataBreakpoints:   make(map[uint16]*DataBreakpoint),
	}
}

// Return the values of a breakpoint map ordered by address.
func sortedByAddr[T any](m map[uint16]T) []T {
	addrs := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, m[a])
	}
	return out
}

// GetBreakpoint looks up a breakpoint by address and returns it if found.
// Otherwise it returns nil.
func (d *Debugger) GetBreakpoint(addr uint16) *Breakpoint {
	return d.breakpoints[addr]
}

// GetBreakpoints returns all breakpoints currently set in the debugger,
// ordered by address.
func (d *Debugger) GetBreakpoints() []*Breakpoint {
	return sortedByAddr(d.breakpoints)
}

// AddBreakpoint adds a new breakpoint address to the debugger. An existing
// breakpoint at the address is replaced.
func (d *Debugger) AddBreakpoint(addr uint16) *Breakpoint {
	b := &Breakpoint{Address: addr}
	d.breakpoints[addr] = b
	return b
}

// RemoveBreakpoint removes a breakpoint from the debugger.
func (d *Debugger) RemoveBreakpoint(addr uint16) {
	delete(d.breakpoints, addr)
}

// GetDataBreakpoint looks up a data breakpoint on the provided address
// and returns it if found. Otherwise it returns nil.
func (d *Debugger) GetDataBreakpoint(addr uint16) *DataBreakpoint {
	return d.dataBreakpoints[addr]
}

// GetDataBreakpoints returns all data breakpoints currently set in the
// debugger, ordered by address.
func (d *Debugger) GetDataBreakpoints() []*DataBreakpoint {
	return sortedByAddr(d.dataBreakpoints)
}

// AddDataBreakpoint adds an unconditional data breakpoint on the requested
// address.
func (d *Debugger) AddDataBreakpoint(addr uint16) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr}
	d.dataBreakpoints[addr] = b
	return b
}

// AddConditionalDataBreakpoint adds a data breakpoint on the requested
// address that triggers only when 'value' is stored.
func (d *Debugger) AddConditionalDataBreakpoint(addr uint16, value byte) *DataBreakpoint {
	b := &DataBreakpoint{Address: addr, Conditional: true, Value: value}
	d.dataBreakpoints[addr] = b
	return b
}

// RemoveDataBreakpoint removes a (conditional or unconditional) data
// breakpoint at the requested address.
func (d *Debugger) RemoveDataBreakpoint(addr uint16) {
	delete(d.dataBreakpoints, addr)
}

// Called after each instruction with the new program counter.
func (d *Debugger) onUpdatePC(cpu *CPU, addr uint16) {
	if d.breakpointHandler == nil {
		return
	}
	if b, ok := d.breakpoints[addr]; ok && !b.Disabled {
		d.breakpointHandler.OnBreakpoint(cpu, b)
	}
}

// Called before the CPU stores 'v' to 'addr'.
func (d *Debugger) onDataStore(cpu *CPU, addr uint16, v byte) {
	if d.breakpointHandler == nil {
		return
	}
	if b, ok := d.dataBreakpoints[addr]; ok && !b.Disabled {
		if !b.Conditional || b.Value == v {
			d.breakpointHandler.OnDataBreakpoint(cpu, b)
		}
	}
}
