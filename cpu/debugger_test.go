package cpu_test

import (
	"testing"

	"github.com/famiclone/go2a03/cpu"
)

type bpRecorder struct {
	breaks     []uint16
	dataBreaks []uint16
}

func (r *bpRecorder) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	r.breaks = append(r.breaks, b.Address)
}

func (r *bpRecorder) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	r.dataBreaks = append(r.dataBreaks, b.Address)
}

func TestBreakpoints(t *testing.T) {
	// LDA #$01; STA $20; LDA #$02; STA $20; STA $21
	c, _ := loadCPU(cpu.Config{}, 0x1000, 0xa9, 0x01, 0x85, 0x20, 0xa9, 0x02, 0x85, 0x20, 0x85, 0x21)
	r := &bpRecorder{}
	d := cpu.NewDebugger(r)
	c.AttachDebugger(d)

	d.AddBreakpoint(0x1004)
	d.AddBreakpoint(0x1002).Disabled = true
	d.AddConditionalDataBreakpoint(0x20, 0x02)
	d.AddDataBreakpoint(0x21)

	stepCPU(t, c, 5)

	if len(r.breaks) != 1 || r.breaks[0] != 0x1004 {
		t.Errorf("breakpoint hits incorrect: %v", r.breaks)
	}
	if len(r.dataBreaks) != 2 || r.dataBreaks[0] != 0x20 || r.dataBreaks[1] != 0x21 {
		t.Errorf("data breakpoint hits incorrect: %v", r.dataBreaks)
	}

	bps := d.GetBreakpoints()
	if len(bps) != 2 || bps[0].Address != 0x1002 || bps[1].Address != 0x1004 {
		t.Errorf("breakpoints not sorted: %v", bps)
	}
	d.RemoveBreakpoint(0x1002)
	if d.GetBreakpoint(0x1002) != nil {
		t.Error("breakpoint not removed")
	}
	d.RemoveDataBreakpoint(0x20)
	if dbps := d.GetDataBreakpoints(); len(dbps) != 1 || dbps[0].Address != 0x21 {
		t.Errorf("data breakpoints incorrect: %v", dbps)
	}
}

func TestTracer(t *testing.T) {
	// LDX #$05; STX $0200
	c, _ := loadCPU(cpu.Config{}, 0x1000, 0xa2, 0x05, 0x8e, 0x00, 0x02)
	var snaps []cpu.Snapshot
	c.AttachTracer(cpu.TracerFunc(func(s *cpu.Snapshot) {
		snaps = append(snaps, *s)
	}))
	stepCPU(t, c, 2)

	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	s := snaps[1]
	if s.Reg.PC != 0x1002 || s.Reg.X != 0x05 || s.Cycles != 2 {
		t.Errorf("snapshot state incorrect: PC=$%04X X=$%02X CYC=%d", s.Reg.PC, s.Reg.X, s.Cycles)
	}
	if s.Inst.Name != "STX" || s.Operand() != 0x0200 || len(s.InstBytes()) != 3 {
		t.Errorf("snapshot instruction incorrect: %s $%04X", s.Inst.Name, s.Operand())
	}
	if s.PS != cpu.PowerOnPS {
		t.Errorf("snapshot status incorrect. exp: $%02X, got: $%02X", cpu.PowerOnPS, s.PS)
	}
}
