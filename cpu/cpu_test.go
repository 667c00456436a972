package cpu_test

import (
	"testing"

	"github.com/famiclone/go2a03/cpu"
)

func loadCPU(config cpu.Config, origin uint16, code ...byte) (*cpu.CPU, *cpu.FlatMemory) {
	mem := cpu.NewFlatMemory()
	c := cpu.NewCPU(config, mem)
	mem.StoreBytes(origin, code)
	c.SetPC(origin)
	return c, mem
}

func stepCPU(t *testing.T, c *cpu.CPU, steps int) {
	t.Helper()
	for i := 0; i < steps; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func runCPU(t *testing.T, steps int, code ...byte) (*cpu.CPU, *cpu.FlatMemory) {
	t.Helper()
	c, mem := loadCPU(cpu.Config{}, 0x1000, code...)
	stepCPU(t, c, steps)
	return c, mem
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	if c.Reg.A != acc {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
	}
}

func expectX(t *testing.T, c *cpu.CPU, x byte) {
	t.Helper()
	if c.Reg.X != x {
		t.Errorf("X register incorrect. exp: $%02X, got: $%02X", x, c.Reg.X)
	}
}

func expectSP(t *testing.T, c *cpu.CPU, sp byte) {
	t.Helper()
	if c.Reg.SP != sp {
		t.Errorf("stack pointer incorrect. exp: $%02X, got $%02X", sp, c.Reg.SP)
	}
}

func expectPS(t *testing.T, c *cpu.CPU, ps byte) {
	t.Helper()
	if got := c.Reg.PS(); got != ps {
		t.Errorf("status incorrect. exp: $%02X, got: $%02X", ps, got)
	}
}

func expectMem(t *testing.T, mem *cpu.FlatMemory, addr uint16, v byte) {
	t.Helper()
	got := mem.LoadByte(addr)
	if got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func TestAccumulator(t *testing.T) {
	// LDA #$5E; STA $15; STA $1500
	c, mem := runCPU(t, 3, 0xa9, 0x5e, 0x85, 0x15, 0x8d, 0x00, 0x15)

	expectPC(t, c, 0x1007)
	expectCycles(t, c, 9)
	expectACC(t, c, 0x5e)
	expectMem(t, mem, 0x15, 0x5e)
	expectMem(t, mem, 0x1500, 0x5e)
}

func TestAddOverflow(t *testing.T) {
	// CLC; LDA #$50; ADC #$50
	c, _ := runCPU(t, 3, 0x18, 0xa9, 0x50, 0x69, 0x50)

	expectACC(t, c, 0xa0)
	if !c.Reg.Overflow || !c.Reg.Sign || c.Reg.Carry || c.Reg.Zero {
		t.Errorf("flags incorrect. V=%v N=%v C=%v Z=%v",
			c.Reg.Overflow, c.Reg.Sign, c.Reg.Carry, c.Reg.Zero)
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		a, m   byte
		carry  bool
		result byte
		c, v   bool
	}{
		{0x50, 0xf0, true, 0x60, false, false},
		{0x50, 0xb0, true, 0xa0, false, true},
		{0xd0, 0x70, true, 0x60, true, true},
		{0x00, 0x01, true, 0xff, false, false},
		{0x05, 0x03, false, 0x01, true, false},
	}

	for _, tt := range tests {
		// LDA #a; SBC #m
		c, _ := loadCPU(cpu.Config{}, 0x1000, 0xa9, tt.a, 0xe9, tt.m)
		c.Reg.Carry = tt.carry
		stepCPU(t, c, 2)

		expectACC(t, c, tt.result)
		if c.Reg.Carry != tt.c || c.Reg.Overflow != tt.v {
			t.Errorf("$%02X-$%02X: C=%v V=%v, exp C=%v V=%v",
				tt.a, tt.m, c.Reg.Carry, c.Reg.Overflow, tt.c, tt.v)
		}
	}
}

func TestDecimalMode(t *testing.T) {
	// SED; CLC; LDA #$09; ADC #$01
	code := []byte{0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01}

	c, _ := loadCPU(cpu.Config{}, 0x1000, code...)
	stepCPU(t, c, 4)
	expectACC(t, c, 0x0a)
	if !c.Reg.Decimal {
		t.Error("decimal flag not set")
	}

	c, _ = loadCPU(cpu.Config{Decimal: true}, 0x1000, code...)
	stepCPU(t, c, 4)
	expectACC(t, c, 0x10)

	// SED; SEC; LDA #$10; SBC #$01
	c, _ = loadCPU(cpu.Config{Decimal: true}, 0x1000, 0xf8, 0x38, 0xa9, 0x10, 0xe9, 0x01)
	stepCPU(t, c, 4)
	expectACC(t, c, 0x09)
}

func TestDecimalFlags(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		a, m   byte
		carry  bool
		expA   byte
		expC   bool
		expZ   bool
		expN   bool
		expV   bool
	}{
		{"ADC 99+01", 0x69, 0x99, 0x01, false, 0x00, true, false, true, false},
		{"ADC 58+46", 0x69, 0x58, 0x46, true, 0x05, true, false, true, true},
		{"ADC 12+34", 0x69, 0x12, 0x34, false, 0x46, false, false, false, false},
		{"ADC 79+00", 0x69, 0x79, 0x00, true, 0x80, false, false, true, true},
		{"SBC 00-01", 0xe9, 0x00, 0x01, true, 0x99, false, false, true, false},
		{"SBC 46-12", 0xe9, 0x46, 0x12, true, 0x34, true, false, false, false},
		{"SBC 40-40", 0xe9, 0x40, 0x40, true, 0x00, true, true, false, false},
	}

	for _, tt := range tests {
		// SED; <op> #m
		c, _ := loadCPU(cpu.Config{Decimal: true}, 0x1000, 0xf8, tt.opcode, tt.m)
		c.Reg.A, c.Reg.Carry = tt.a, tt.carry
		stepCPU(t, c, 2)

		r := &c.Reg
		if r.A != tt.expA || r.Carry != tt.expC || r.Zero != tt.expZ || r.Sign != tt.expN || r.Overflow != tt.expV {
			t.Errorf("%s: A=$%02X C=%v Z=%v N=%v V=%v, exp A=$%02X C=%v Z=%v N=%v V=%v",
				tt.name, r.A, r.Carry, r.Zero, r.Sign, r.Overflow,
				tt.expA, tt.expC, tt.expZ, tt.expN, tt.expV)
		}
	}
}

func TestBit(t *testing.T) {
	// LDA #$01; BIT $20
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0xa9, 0x01, 0x24, 0x20)
	mem.StoreByte(0x20, 0xc0)
	stepCPU(t, c, 2)

	expectACC(t, c, 0x01)
	if !c.Reg.Zero || !c.Reg.Sign || !c.Reg.Overflow {
		t.Errorf("flags incorrect. Z=%v N=%v V=%v", c.Reg.Zero, c.Reg.Sign, c.Reg.Overflow)
	}
}

func TestCompare(t *testing.T) {
	// LDA #$40; CMP #$30
	c, _ := runCPU(t, 2, 0xa9, 0x40, 0xc9, 0x30)
	if !c.Reg.Carry || c.Reg.Zero || c.Reg.Sign {
		t.Errorf("A>M flags incorrect. C=%v Z=%v N=%v", c.Reg.Carry, c.Reg.Zero, c.Reg.Sign)
	}

	// LDX #$30; CPX #$30
	c, _ = runCPU(t, 2, 0xa2, 0x30, 0xe0, 0x30)
	if !c.Reg.Carry || !c.Reg.Zero {
		t.Errorf("X=M flags incorrect. C=%v Z=%v", c.Reg.Carry, c.Reg.Zero)
	}

	// LDY #$10; CPY #$30
	c, _ = runCPU(t, 2, 0xa0, 0x10, 0xc0, 0x30)
	if c.Reg.Carry || c.Reg.Zero || !c.Reg.Sign {
		t.Errorf("Y<M flags incorrect. C=%v Z=%v N=%v", c.Reg.Carry, c.Reg.Zero, c.Reg.Sign)
	}
}

func TestShiftRotate(t *testing.T) {
	// SEC; LDA #$81; ROL A; ASL $20; ROR $21; LSR A
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x38, 0xa9, 0x81, 0x2a, 0x06, 0x20, 0x66, 0x21, 0x4a)
	mem.StoreByte(0x20, 0x40)
	mem.StoreByte(0x21, 0x01)

	stepCPU(t, c, 3)
	expectACC(t, c, 0x03)
	if !c.Reg.Carry {
		t.Error("ROL carry not set")
	}

	stepCPU(t, c, 1)
	expectMem(t, mem, 0x20, 0x80)
	if c.Reg.Carry || !c.Reg.Sign {
		t.Errorf("ASL flags incorrect. C=%v N=%v", c.Reg.Carry, c.Reg.Sign)
	}

	stepCPU(t, c, 1)
	expectMem(t, mem, 0x21, 0x00)
	if !c.Reg.Carry || !c.Reg.Zero {
		t.Errorf("ROR flags incorrect. C=%v Z=%v", c.Reg.Carry, c.Reg.Zero)
	}

	stepCPU(t, c, 1)
	expectACC(t, c, 0x01)
	expectCycles(t, c, 2+2+2+5+5+2)
}

func TestIncrementWrap(t *testing.T) {
	// LDX #$FF; INX; DEY; INC $10
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0xa2, 0xff, 0xe8, 0x88, 0xe6, 0x10)
	mem.StoreByte(0x10, 0xff)
	stepCPU(t, c, 4)

	expectX(t, c, 0x00)
	if c.Reg.Y != 0xff {
		t.Errorf("Y incorrect. exp: $FF, got: $%02X", c.Reg.Y)
	}
	expectMem(t, mem, 0x10, 0x00)
	if !c.Reg.Zero {
		t.Error("zero flag not set")
	}
}

func TestZeroPageWrap(t *testing.T) {
	// LDX #$01; LDA $FF,X
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0xa2, 0x01, 0xb5, 0xff)
	mem.StoreByte(0x0000, 0x11)
	mem.StoreByte(0x0100, 0x22)
	stepCPU(t, c, 2)

	expectACC(t, c, 0x11)
	expectCycles(t, c, 6)
}

func TestIndirectPointerWrap(t *testing.T) {
	// LDX #$01; LDA ($FF,X) reads its pointer from $00/$01.
	// LDY #$01; LDA ($FF),Y reads its pointer from $FF/$00.
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0xa2, 0x01, 0xa1, 0xff, 0xa0, 0x01, 0xb1, 0xff)
	mem.StoreBytes(0x0000, []byte{0x00, 0x20})
	mem.StoreByte(0x00ff, 0x10)
	mem.StoreByte(0x2000, 0x5a)
	mem.StoreByte(0x0011, 0xa5)

	stepCPU(t, c, 2)
	expectACC(t, c, 0x5a)

	stepCPU(t, c, 2)
	expectACC(t, c, 0xa5)
	expectCycles(t, c, 2+6+2+5)
}

func TestJumpIndirectPageWrap(t *testing.T) {
	// JMP ($30FF)
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x6c, 0xff, 0x30)
	mem.StoreByte(0x30ff, 0x40)
	mem.StoreByte(0x3000, 0x80)
	mem.StoreByte(0x3100, 0x50)
	stepCPU(t, c, 1)

	expectPC(t, c, 0x8040)
	expectCycles(t, c, 5)
}

func TestBranchTiming(t *testing.T) {
	tests := []struct {
		origin uint16
		code   []byte
		pc     uint16
		cycles int
	}{
		{0x1000, []byte{0xd0, 0x10}, 0x1012, 3}, // BNE taken, same page
		{0x1000, []byte{0xf0, 0x10}, 0x1002, 2}, // BEQ not taken
		{0x10f0, []byte{0xd0, 0x20}, 0x1112, 4}, // BNE taken, page crossed
		{0x1000, []byte{0xd0, 0xfc}, 0x0ffe, 4}, // BNE backward, page crossed
	}

	for _, tt := range tests {
		c, _ := loadCPU(cpu.Config{}, tt.origin, tt.code...)
		c.Reg.Zero = false
		n, err := c.Step()
		if err != nil {
			t.Fatal(err)
		}
		expectPC(t, c, tt.pc)
		if n != tt.cycles {
			t.Errorf("branch at $%04X cycles incorrect. exp: %d, got: %d", tt.origin, tt.cycles, n)
		}
	}
}

func TestPageCross(t *testing.T) {
	// LDX #$01; LDA $10FF,X; STA $10FF,X; STA $1000,X; LDA ($F0),Y
	c, mem := loadCPU(cpu.Config{}, 0x0200,
		0xa2, 0x01, 0xbd, 0xff, 0x10, 0x9d, 0xff, 0x10, 0x9d, 0x00, 0x10, 0xb1, 0xf0)
	mem.StoreByte(0x1100, 0x77)
	mem.StoreBytes(0x00f0, []byte{0xff, 0x20})
	c.Reg.Y = 0x01

	tests := []int{2, 5, 5, 5, 6}
	for i, exp := range tests {
		n, err := c.Step()
		if err != nil {
			t.Fatal(err)
		}
		if n != exp {
			t.Errorf("instruction %d cycles incorrect. exp: %d, got: %d", i, exp, n)
		}
	}
	expectMem(t, mem, 0x1100, 0x77)
	expectMem(t, mem, 0x1001, 0x77)
	expectCycles(t, c, 23)
}

func TestStack(t *testing.T) {
	// LDA #$11; PHA; LDA #$12; PHA; LDA #$13; PHA; PLA; PLA; PLA
	c, mem := loadCPU(cpu.Config{}, 0x1000,
		0xa9, 0x11, 0x48, 0xa9, 0x12, 0x48, 0xa9, 0x13, 0x48, 0x68, 0x68, 0x68)

	stepCPU(t, c, 6)
	expectSP(t, c, 0xfa)
	expectMem(t, mem, 0x1fd, 0x11)
	expectMem(t, mem, 0x1fc, 0x12)
	expectMem(t, mem, 0x1fb, 0x13)

	stepCPU(t, c, 3)
	expectACC(t, c, 0x11)
	expectSP(t, c, 0xfd)
	expectCycles(t, c, 2*3+3*3+4*3)
}

func TestStackWrap(t *testing.T) {
	// LDA #$5A; PHA; PHA
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0xa9, 0x5a, 0x48, 0x48)
	c.Reg.SP = 0x00
	stepCPU(t, c, 3)

	expectSP(t, c, 0xfe)
	expectMem(t, mem, 0x0100, 0x5a)
	expectMem(t, mem, 0x01ff, 0x5a)
	expectMem(t, mem, 0x0200, 0x00)
}

func TestPushPullRoundTrip(t *testing.T) {
	for _, v := range []byte{0x00, 0x01, 0x7f, 0x80, 0xff} {
		// LDA #v; PHA; LDA #$00; PLA
		c, _ := loadCPU(cpu.Config{}, 0x1000, 0xa9, v, 0x48, 0xa9, 0x00, 0x68)
		stepCPU(t, c, 4)
		expectACC(t, c, v)
		expectSP(t, c, cpu.PowerOnSP)
	}
}

func TestProcessorStatus(t *testing.T) {
	// PHP; PLA; PHA; PLP
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x08, 0x68, 0x48, 0x28)
	stepCPU(t, c, 1)
	expectMem(t, mem, 0x1fd, cpu.PowerOnPS|cpu.BreakBit)

	stepCPU(t, c, 3)
	expectPS(t, c, cpu.PowerOnPS)
}

func TestSubroutine(t *testing.T) {
	// $1000: JSR $2000; NOP
	// $2000: RTS
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x20, 0x00, 0x20, 0xea)
	mem.StoreByte(0x2000, 0x60)

	stepCPU(t, c, 1)
	expectPC(t, c, 0x2000)
	expectMem(t, mem, 0x1fd, 0x10)
	expectMem(t, mem, 0x1fc, 0x02)

	stepCPU(t, c, 2)
	expectPC(t, c, 0x1004)
	expectCycles(t, c, 6+6+2)
}

func TestBreak(t *testing.T) {
	// $1000: BRK
	// $3000: RTI
	c, mem := loadCPU(cpu.Config{}, 0x1000, 0x00, 0xff)
	mem.StoreAddress(cpu.VectorBRK, 0x3000)
	mem.StoreByte(0x3000, 0x40)
	c.Reg.InterruptDisable = false

	stepCPU(t, c, 1)
	expectPC(t, c, 0x3000)
	expectSP(t, c, 0xfa)
	expectMem(t, mem, 0x1fd, 0x10)
	expectMem(t, mem, 0x1fc, 0x02)
	expectMem(t, mem, 0x1fb, cpu.ReservedBit|cpu.BreakBit)
	if !c.Reg.InterruptDisable {
		t.Error("BRK did not set interrupt disable")
	}

	stepCPU(t, c, 1)
	expectPC(t, c, 0x1002)
	expectPS(t, c, cpu.ReservedBit)
	expectCycles(t, c, 13)
}

type brkHandler struct {
	hits int
}

func (h *brkHandler) OnBrk(c *cpu.CPU) {
	h.hits++
}

func TestBrkHandler(t *testing.T) {
	c, _ := loadCPU(cpu.Config{}, 0x1000, 0x00)
	h := &brkHandler{}
	c.AttachBrkHandler(h)

	n, err := c.Step()
	if err != nil || n != 0 || h.hits != 1 {
		t.Errorf("BRK handler not invoked. n=%d err=%v hits=%d", n, err, h.hits)
	}
	expectPC(t, c, 0x1000)
}
