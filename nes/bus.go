// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nes wires the 2A03 CPU core into a console: a memory bus with
// the console's address decoding and a master loop that keeps attached
// subsystems in lockstep with the CPU.
package nes

// Console address map
const (
	RAMSize        = 0x0800 // internal work RAM
	RAMMirrorEnd   = 0x1fff // RAM repeats every RAMSize bytes up to here
	PPUStart       = 0x2000 // video unit register window
	PPUMirrorEnd   = 0x3fff // the 8 video registers repeat up to here
	PPURegisters   = 8
	IOStart        = 0x4000 // audio and input registers
	IOEnd          = 0x401f
	IORegisters    = IOEnd - IOStart + 1
	CartridgeStart = 0x4020 // cartridge space up to $FFFF
)

// A Device is a memory-mapped peripheral. Addresses passed to a device are
// offsets into the window it is attached to.
type Device interface {
	// Load reads a register. Reads may have side effects.
	Load(offset uint16) byte

	// Store writes a register.
	Store(offset uint16, v byte)

	// Peek reads a register without side effects.
	Peek(offset uint16) byte
}

// Bus is the console's 16-bit address space. It decodes each access to
// work RAM, the video register window, the I/O register window or the
// cartridge. Regions with no device attached behave as open bus and
// return the last value seen on the data bus.
type Bus struct {
	ram     [RAMSize]byte
	ppu     Device
	io      Device
	cart    Device
	openBus byte
}

// NewBus creates a bus with cleared work RAM and no devices attached.
func NewBus() *Bus {
	return &Bus{}
}

// AttachPPU attaches the device serving the video register window.
func (b *Bus) AttachPPU(d Device) {
	b.ppu = d
}

// AttachIO attaches the device serving the audio and input registers.
func (b *Bus) AttachIO(d Device) {
	b.io = d
}

// AttachCartridge attaches the device serving cartridge space.
func (b *Bus) AttachCartridge(d Device) {
	b.cart = d
}

// Cartridge returns the attached cartridge device, or nil.
func (b *Bus) Cartridge() Device {
	return b.cart
}

// Decode an address into the device serving it and the offset within
// that device's window. RAM is reported as a nil device.
func (b *Bus) decode(addr uint16) (d Device, offset uint16, ram bool) {
	switch {
	case addr <= RAMMirrorEnd:
		return nil, addr % RAMSize, true
	case addr <= PPUMirrorEnd:
		return b.ppu, (addr - PPUStart) % PPURegisters, false
	case addr <= IOEnd:
		return b.io, addr - IOStart, false
	default:
		return b.cart, addr - CartridgeStart, false
	}
}

// LoadByte reads a byte from the bus.
func (b *Bus) LoadByte(addr uint16) byte {
	d, offset, ram := b.decode(addr)
	switch {
	case ram:
		b.openBus = b.ram[offset]
	case d != nil:
		b.openBus = d.Load(offset)
	}
	return b.openBus
}

// PeekByte reads a byte from the bus without side effects.
func (b *Bus) PeekByte(addr uint16) byte {
	d, offset, ram := b.decode(addr)
	switch {
	case ram:
		return b.ram[offset]
	case d != nil:
		return d.Peek(offset)
	default:
		return b.openBus
	}
}

// StoreByte writes a byte to the bus. Writes to regions with no device
// attached are dropped.
func (b *Bus) StoreByte(addr uint16, v byte) {
	b.openBus = v
	d, offset, ram := b.decode(addr)
	switch {
	case ram:
		b.ram[offset] = v
	case d != nil:
		d.Store(offset, v)
	}
}

// StoreBytes writes a sequence of bytes starting at addr.
func (b *Bus) StoreBytes(addr uint16, p []byte) {
	for i, v := range p {
		b.StoreByte(addr+uint16(i), v)
	}
}

// PeekBytes fills p with bytes starting at addr, without side effects.
func (b *Bus) PeekBytes(addr uint16, p []byte) {
	for i := range p {
		p[i] = b.PeekByte(addr + uint16(i))
	}
}
