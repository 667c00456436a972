package cpu_test

import (
	"errors"
	"testing"

	"github.com/famiclone/go2a03/cpu"
)

func TestUnofficialStrict(t *testing.T) {
	// NOP $10 (unofficial)
	c, _ := loadCPU(cpu.Config{Unofficial: cpu.UnofficialStrict}, 0x1000, 0x04, 0x10)

	n, err := c.Step()
	var uerr *cpu.UnofficialOpcodeError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnofficialOpcodeError, got %v", err)
	}
	if uerr.Opcode != 0x04 || uerr.Addr != 0x1000 {
		t.Errorf("error incorrect: %v", uerr)
	}
	if n != 0 {
		t.Errorf("faulting step consumed %d cycles", n)
	}
	expectPC(t, c, 0x1000)
	expectCycles(t, c, 0)

	// Official opcodes still run.
	c, _ = loadCPU(cpu.Config{Unofficial: cpu.UnofficialStrict}, 0x1000, 0xa9, 0x01)
	stepCPU(t, c, 1)
	expectACC(t, c, 0x01)
}

func TestUnofficialNOP(t *testing.T) {
	// LAX $10; SLO $11; JAM
	c, mem := loadCPU(cpu.Config{Unofficial: cpu.UnofficialNOP}, 0x1000, 0xa7, 0x10, 0x07, 0x11, 0x02)
	mem.StoreByte(0x10, 0x55)
	mem.StoreByte(0x11, 0x81)
	stepCPU(t, c, 3)

	expectACC(t, c, 0x00)
	expectX(t, c, 0x00)
	expectMem(t, mem, 0x11, 0x81)
	expectPC(t, c, 0x1005)
	expectCycles(t, c, 3+5+2)
}

func TestUnofficialEmulate(t *testing.T) {
	tests := []struct {
		name  string
		code  []byte
		a, x  byte
		carry bool
		mem   byte // initial value at $10
		expA  byte
		expX  byte
		expM  byte // final value at $10
		expC  bool
	}{
		{"LAX", []byte{0xa7, 0x10}, 0x00, 0x00, false, 0x8f, 0x8f, 0x8f, 0x8f, false},
		{"SAX", []byte{0x87, 0x10}, 0xf0, 0x3c, false, 0x00, 0xf0, 0x3c, 0x30, false},
		{"DCP", []byte{0xc7, 0x10}, 0x40, 0x00, false, 0x41, 0x40, 0x00, 0x40, true},
		{"ISB", []byte{0xe7, 0x10}, 0x10, 0x00, true, 0x04, 0x0b, 0x00, 0x05, true},
		{"SLO", []byte{0x07, 0x10}, 0x01, 0x00, false, 0x81, 0x03, 0x00, 0x02, true},
		{"RLA", []byte{0x27, 0x10}, 0x0f, 0x00, true, 0x84, 0x09, 0x00, 0x09, true},
		{"SRE", []byte{0x47, 0x10}, 0xff, 0x00, false, 0x03, 0xfe, 0x00, 0x01, true},
		{"RRA", []byte{0x67, 0x10}, 0x10, 0x00, false, 0x03, 0x12, 0x00, 0x01, false},
		{"ANC", []byte{0x0b, 0x80}, 0xff, 0x00, false, 0x00, 0x80, 0x00, 0x00, true},
		{"ALR", []byte{0x4b, 0x03}, 0xff, 0x00, false, 0x00, 0x01, 0x00, 0x00, true},
		{"ARR", []byte{0x6b, 0xff}, 0xc0, 0x00, true, 0x00, 0xe0, 0x00, 0x00, true},
		{"AXS", []byte{0xcb, 0x02}, 0x0f, 0x07, false, 0x00, 0x0f, 0x05, 0x00, true},
		{"SBC", []byte{0xeb, 0x01}, 0x05, 0x00, true, 0x00, 0x04, 0x00, 0x00, true},
		{"LXA", []byte{0xab, 0x0f}, 0x00, 0x00, false, 0x00, 0x0e, 0x0e, 0x00, false},
		{"XAA", []byte{0x8b, 0xff}, 0x00, 0x33, false, 0x00, 0x22, 0x33, 0x00, false},
	}

	for _, tt := range tests {
		c, mem := loadCPU(cpu.Config{}, 0x1000, tt.code...)
		c.Reg.A, c.Reg.X, c.Reg.Carry = tt.a, tt.x, tt.carry
		mem.StoreByte(0x10, tt.mem)

		if _, err := c.Step(); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if c.Reg.A != tt.expA || c.Reg.X != tt.expX || c.Reg.Carry != tt.expC {
			t.Errorf("%s: A=$%02X X=$%02X C=%v, exp A=$%02X X=$%02X C=%v",
				tt.name, c.Reg.A, c.Reg.X, c.Reg.Carry, tt.expA, tt.expX, tt.expC)
		}
		if got := mem.LoadByte(0x10); got != tt.expM {
			t.Errorf("%s: memory at $10 incorrect. exp: $%02X, got: $%02X", tt.name, tt.expM, got)
		}
	}
}

func TestUnofficialHighByteStore(t *testing.T) {
	// SHX $1200,Y with no page crossing stores X AND $13.
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x9e, 0x00, 0x12)
	c.Reg.X, c.Reg.Y = 0xff, 0x05
	stepCPU(t, c, 1)
	expectMem(t, mem, 0x1205, 0x13)

	// SHY $12F0,X crossing into $13xx replaces the high byte with the value.
	c, mem = loadCPU(cpu.Config{}, 0x1000, 0x9c, 0xf0, 0x12)
	c.Reg.X, c.Reg.Y = 0x20, 0x11
	stepCPU(t, c, 1)
	expectMem(t, mem, 0x1110, 0x11)
	expectCycles(t, c, 5)

	// TAS $1200,Y also loads SP with A AND X.
	c, mem = loadCPU(cpu.Config{}, 0x1000, 0x9b, 0x00, 0x12)
	c.Reg.A, c.Reg.X, c.Reg.Y = 0xf3, 0x3f, 0x00
	stepCPU(t, c, 1)
	expectSP(t, c, 0x33)
	expectMem(t, mem, 0x1200, 0x13)
}

func TestUnofficialNOPReads(t *testing.T) {
	// NOP $10FF,X crosses a page and pays for it.
	c, _ := loadCPU(cpu.Config{}, 0x1000, 0x1c, 0xff, 0x10)
	c.Reg.X = 0x01
	stepCPU(t, c, 1)
	expectCycles(t, c, 5)
	expectPC(t, c, 0x1003)
}
