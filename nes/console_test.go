package nes_test

import (
	"context"
	"testing"
	"time"

	"github.com/famiclone/go2a03/cpu"
	"github.com/famiclone/go2a03/nes"
)

// A subsystem that raises its IRQ line once it has seen 'period' cycles.
type timer struct {
	period  int
	elapsed int
	ticks   int
}

func (t *timer) Tick(cycles int) {
	t.elapsed += cycles
	t.ticks++
}

func (t *timer) IRQLine() bool {
	return t.elapsed >= t.period
}

// A subsystem that pulses NMI on a fixed cycle.
type vblank struct {
	at      int
	elapsed int
}

func (v *vblank) Tick(cycles int) { v.elapsed += cycles }
func (v *vblank) NMILine() bool { return v.elapsed >= v.at }

func TestConsoleLockstep(t *testing.T) {
	c := nes.NewConsole(cpu.Config{})
	// $8000: LDA #$01; STA $00; JMP $8000
	c.LoadProgram(0x8000, []byte{0xa9, 0x01, 0x85, 0x00, 0x4c, 0x00, 0x80})

	tm := &timer{period: 1 << 30}
	c.Attach(tm)

	var total int
	for i := 0; i < 10; i++ {
		n, err := c.Step()
		if err != nil {
			t.Fatal(err)
		}
		total += n
	}
	if tm.elapsed != total || tm.ticks != 10 {
		t.Errorf("subsystem out of step. cycles=%d ticks=%d, cpu cycles=%d", tm.elapsed, tm.ticks, total)
	}
	if uint64(total) != c.CPU.Cycles {
		t.Errorf("cycle totals differ. steps=%d cpu=%d", total, c.CPU.Cycles)
	}
	if v := c.Bus.PeekByte(0x0000); v != 0x01 {
		t.Errorf("program did not run. $0000=$%02X", v)
	}
}

func TestConsoleInterruptLines(t *testing.T) {
	c := nes.NewConsole(cpu.Config{})
	// $8000: CLI; JMP $8001
	c.LoadProgram(0x8000, []byte{0x58, 0x4c, 0x01, 0x80})
	c.Bus.StoreBytes(cpu.VectorIRQ, []byte{0x00, 0x90})
	c.Bus.StoreBytes(cpu.VectorNMI, []byte{0x00, 0xa0})
	c.Bus.StoreBytes(0x9000, []byte{0x4c, 0x00, 0x90})
	c.Bus.StoreBytes(0xa000, []byte{0x40})

	c.Attach(&timer{period: 20})
	c.Attach(&vblank{at: 40})

	sawIRQ, sawNMI := false, false
	for i := 0; i < 40; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
		switch c.CPU.State() {
		case cpu.ServicingIRQ:
			sawIRQ = true
		case cpu.ServicingNMI:
			sawNMI = true
		}
	}
	if !sawIRQ || !sawNMI {
		t.Errorf("interrupts not delivered. irq=%v nmi=%v", sawIRQ, sawNMI)
	}
}

func TestConsoleRun(t *testing.T) {
	c := nes.NewConsole(cpu.Config{})
	// $8000: JMP $8000
	c.LoadProgram(0x8000, []byte{0x4c, 0x00, 0x80})

	elapsed, err := c.Run(context.Background(), 100)
	if err != nil {
		t.Fatal(err)
	}
	// Reset (7) followed by 3-cycle jumps.
	if elapsed != 100 {
		t.Errorf("elapsed cycles incorrect. exp: 100, got: %d", elapsed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Run(ctx, 100); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	c.LoadProgram(0x8000, []byte{0x02})
	if _, err := c.Run(context.Background(), 100); err != cpu.ErrJammed {
		t.Errorf("expected ErrJammed, got %v", err)
	}
}

type brkCounter struct {
	hits int
}

func (b *brkCounter) OnBrk(c *cpu.CPU) { b.hits++ }

func TestConsoleRunStopsOnBrkHandler(t *testing.T) {
	c := nes.NewConsole(cpu.Config{})
	// $8000: NOP; BRK
	c.LoadProgram(0x8000, []byte{0xea, 0x00})
	h := &brkCounter{}
	c.CPU.AttachBrkHandler(h)

	type result struct {
		elapsed uint64
		err     error
	}
	done := make(chan result, 1)
	go func() {
		elapsed, err := c.Run(context.Background(), 100)
		done <- result{elapsed, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatal(r.err)
		}
		// Reset (7) followed by NOP (2).
		if r.elapsed != 9 {
			t.Errorf("elapsed cycles incorrect. exp: 9, got: %d", r.elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after reaching BRK")
	}

	if h.hits != 1 {
		t.Errorf("BRK handler calls incorrect. exp: 1, got: %d", h.hits)
	}
	if c.CPU.Reg.PC != 0x8001 {
		t.Errorf("PC incorrect. exp: $8001, got: $%04X", c.CPU.Reg.PC)
	}
}
