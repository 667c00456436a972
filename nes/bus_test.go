package nes_test

import (
	"testing"

	"github.com/famiclone/go2a03/nes"
)

// A device that counts its reads to observe side effects.
type countingDevice struct {
	regs  [8]byte
	reads int
}

func (d *countingDevice) Load(offset uint16) byte {
	d.reads++
	return d.regs[offset]
}

func (d *countingDevice) Peek(offset uint16) byte { return d.regs[offset] }
func (d *countingDevice) Store(offset uint16, v byte) { d.regs[offset] = v }

func TestRAMMirroring(t *testing.T) {
	b := nes.NewBus()
	b.StoreByte(0x0001, 0x11)
	b.StoreByte(0x1fff, 0x22)

	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		if v := b.LoadByte(addr); v != 0x11 {
			t.Errorf("RAM mirror $%04X incorrect. exp: $11, got: $%02X", addr, v)
		}
	}
	if v := b.LoadByte(0x07ff); v != 0x22 {
		t.Errorf("RAM at $07FF incorrect. exp: $22, got: $%02X", v)
	}
}

func TestPPUMirroring(t *testing.T) {
	b := nes.NewBus()
	d := &countingDevice{}
	b.AttachPPU(d)

	b.StoreByte(0x3ffe, 0x5a)
	if d.regs[6] != 0x5a {
		t.Errorf("write to $3FFE did not reach register 6")
	}
	if v := b.LoadByte(0x2006); v != 0x5a {
		t.Errorf("read of $2006 incorrect. exp: $5A, got: $%02X", v)
	}
	if v := b.LoadByte(0x200e); v != 0x5a {
		t.Errorf("read of $200E incorrect. exp: $5A, got: $%02X", v)
	}
	if d.reads != 2 {
		t.Errorf("device reads incorrect. exp: 2, got: %d", d.reads)
	}

	b.PeekByte(0x2006)
	if d.reads != 2 {
		t.Errorf("peek caused a device read")
	}
}

func TestOpenBus(t *testing.T) {
	b := nes.NewBus()
	b.StoreByte(0x0010, 0x77)
	b.LoadByte(0x0010)
	if v := b.LoadByte(0x4018); v != 0x77 {
		t.Errorf("open bus read incorrect. exp: $77, got: $%02X", v)
	}
	if v := b.PeekByte(0x8000); v != 0x77 {
		t.Errorf("open bus peek incorrect. exp: $77, got: $%02X", v)
	}
}

func TestCartridge(t *testing.T) {
	b := nes.NewBus()
	b.AttachCartridge(nes.NewFlatCartridge())
	b.StoreBytes(0xfffc, []byte{0x00, 0x80})

	var p [2]byte
	b.PeekBytes(0xfffc, p[:])
	if p != [2]byte{0x00, 0x80} {
		t.Errorf("cartridge contents incorrect: % X", p)
	}
	b.StoreByte(0x4020, 0x01)
	if v := b.Cartridge().Peek(0); v != 0x01 {
		t.Errorf("cartridge offset 0 incorrect. exp: $01, got: $%02X", v)
	}
}
