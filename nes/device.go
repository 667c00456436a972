// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nes

// RegisterFile is a Device made of plain read/write registers. It stands
// in for peripherals the console does not emulate, so programs that poke
// at them see their own writes.
type RegisterFile struct {
	regs []byte
}

// NewRegisterFile creates a register file with n registers.
func NewRegisterFile(n int) *RegisterFile {
	return &RegisterFile{regs: make([]byte, n)}
}

// Load returns the register value.
func (r *RegisterFile) Load(offset uint16) byte {
	return r.regs[int(offset)%len(r.regs)]
}

// Peek returns the register value.
func (r *RegisterFile) Peek(offset uint16) byte {
	return r.Load(offset)
}

// Store sets the register value.
func (r *RegisterFile) Store(offset uint16, v byte) {
	r.regs[int(offset)%len(r.regs)] = v
}

// FlatCartridge is a cartridge with writable memory covering all of
// cartridge space and no bank switching. Test programs and raw binaries
// are loaded into it.
type FlatCartridge struct {
	mem [0x10000 - CartridgeStart]byte
}

// NewFlatCartridge creates an empty flat cartridge.
func NewFlatCartridge() *FlatCartridge {
	return &FlatCartridge{}
}

// Load returns the byte at the cartridge offset.
func (c *FlatCartridge) Load(offset uint16) byte {
	return c.mem[offset]
}

// Peek returns the byte at the cartridge offset.
func (c *FlatCartridge) Peek(offset uint16) byte {
	return c.mem[offset]
}

// Store sets the byte at the cartridge offset.
func (c *FlatCartridge) Store(offset uint16, v byte) {
	c.mem[offset] = v
}
