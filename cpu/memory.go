// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Bus interface presents the narrow contract through which the CPU
// performs every memory access. A bus may map addresses to registers with
// read side effects, so the CPU reads each location exactly once per
// access.
type Bus interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)
}

// A Peeker is a bus that can also be read without side effects. Debugging
// and tracing tools use it to inspect memory between steps.
type Peeker interface {
	PeekByte(addr uint16) byte
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer with no memory-mapped registers.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// PeekByte returns the byte at the address.
func (m *FlatMemory) PeekByte(addr uint16) byte {
	return m.b[addr]
}

// LoadBytes loads multiple bytes starting at the address. Reads past the
// top of the address space return zero.
func (m *FlatMemory) LoadBytes(addr uint16, b []byte) {
	n := copy(b, m.b[addr:])
	clear(b[n:])
}

// StoreByte stores a byte at the requested address.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// StoreBytes stores multiple bytes to the requested address.
func (m *FlatMemory) StoreBytes(addr uint16, b []byte) {
	copy(m.b[addr:], b)
}

// StoreAddress stores a little-endian 16-bit value at the address.
func (m *FlatMemory) StoreAddress(addr uint16, v uint16) {
	m.b[addr] = byte(v)
	m.b[addr+1] = byte(v >> 8)
}

// Return the offset address 'addr' + 'offset'. If the offset
// crossed a page boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset'. If the address
// exceeds the zero-page address space, wrap it.
func offsetZeroPage(addr byte, offset byte) uint16 {
	return uint16(addr + offset)
}

// Return the address that follows 'addr' within the same page.
func samePageNext(addr uint16) uint16 {
	return (addr & 0xff00) | ((addr + 1) & 0x00ff)
}

// Given a 1-byte stack pointer register, return the stack
// corresponding memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}
