package disasm_test

import (
	"testing"

	"github.com/famiclone/go2a03/cpu"
	"github.com/famiclone/go2a03/disasm"
)

func TestDisassemble(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0x8000, []byte{
		0xa9, 0x10,       // LDA #$10
		0x9d, 0x00, 0x02, // STA $0200,X
		0x0a,             // ASL A
		0xd0, 0xfa,       // BNE $8002
		0x6c, 0xfc, 0xff, // JMP ($FFFC)
		0xb1, 0x20,       // LDA ($20),Y
		0xea,             // NOP
		0xa7, 0x10,       // LAX $10
	})

	exp := []string{
		"LDA #$10",
		"STA $0200,X",
		"ASL A",
		"BNE $8002",
		"JMP ($FFFC)",
		"LDA ($20),Y",
		"NOP",
		"LAX $10",
	}

	set := cpu.GetInstructionSet(cpu.UnofficialEmulate)
	addr := uint16(0x8000)
	for _, e := range exp {
		line, next := disasm.Disassemble(mem, set, addr)
		if line != e {
			t.Errorf("disassembly at $%04X incorrect. exp: %q, got: %q", addr, e, line)
		}
		addr = next
	}
	if addr != 0x8010 {
		t.Errorf("next address incorrect. exp: $8010, got: $%04X", addr)
	}
}

func TestRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.A, r.PC = 0x42, 0xc000
	r.Carry = true

	exp := "A=$42 X=$00 Y=$00 PS=[-----I-C] SP=$FD PC=$C000"
	if got := disasm.GetRegisterString(&r); got != exp {
		t.Errorf("register string incorrect.\nexp: %s\ngot: %s", exp, got)
	}
}

func TestTrace(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreBytes(0xc000, []byte{
		0x4c, 0xf5, 0xc5, // JMP $C5F5
	})
	mem.StoreBytes(0xc5f5, []byte{
		0xa2, 0x00, // LDX #$00
		0x86, 0x00, // STX $00
		0xb1, 0x10, // LDA ($10),Y
		0x04, 0xa9, // NOP $A9 (unofficial)
	})
	mem.StoreBytes(0x0010, []byte{0x00, 0x03})
	mem.StoreByte(0x0300, 0x89)

	c := cpu.NewCPU(cpu.Config{}, mem)
	c.SetPC(0xc000)
	c.Cycles = 7

	var lines []string
	c.AttachTracer(cpu.TracerFunc(func(s *cpu.Snapshot) {
		lines = append(lines, disasm.Trace(s, mem))
	}))
	for i := 0; i < 5; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}

	exp := []string{
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		"C5F5  A2 00     LDX #$00                        A:00 X:00 Y:00 P:24 SP:FD CYC:10",
		"C5F7  86 00     STX $00 = 00                    A:00 X:00 Y:00 P:26 SP:FD CYC:12",
		"C5F9  B1 10     LDA ($10),Y = 0300 @ 0300 = 89  A:00 X:00 Y:00 P:26 SP:FD CYC:15",
		"C5FB  04 A9    *NOP $A9 = 00                    A:89 X:00 Y:00 P:A4 SP:FD CYC:20",
	}
	for i := range exp {
		if lines[i] != exp[i] {
			t.Errorf("trace line %d incorrect.\nexp: %s\ngot: %s", i, exp[i], lines[i])
		}
	}
}
