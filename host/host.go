// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host allows you to create a "host" that emulates an NES console
// built around a 2A03 CPU, with a built-in debugger and other useful
// tools.
//
// Within the host it is possible to load machine code into memory, debug
// and step through it, measure the number of CPU cycles elapsed, set
// address and data breakpoints, drive the interrupt lines, dump and
// modify memory and registers, trace execution in nestest format, run
// Lua scripts and evaluate arbitrary expressions.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/beevik/cmd"
	"github.com/famiclone/go2a03/cpu"
	"github.com/famiclone/go2a03/disasm"
	"github.com/famiclone/go2a03/nes"
	"github.com/pkg/errors"
)

var errQuit = errors.New("exiting program")

type state byte

const (
	stateProcessingCommands state = iota
	stateRunning
	stateBreakpoint
	stateStepOverBreakpoint
)

type displayFlags uint8

const (
	displayRegisters displayFlags = 1 << iota
	displayCycles
	displayAnnotations

	displayAll = displayRegisters | displayCycles | displayAnnotations
)

// A Host represents a fully emulated NES console, a built-in debugger, and
// other useful tools.
type Host struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	console     *nes.Console
	cpu         *cpu.CPU
	debugger    *cpu.Debugger
	handler     *debugHandler
	lastCmd     *cmd.Selection
	state       state
	exprParser  *exprParser
	settings    *settings
	annotations map[uint16]string
	trace       *traceOutput
	width       int
}

// New creates a new host environment whose CPU uses the given
// configuration.
func New(config cpu.Config) *Host {
	h := &Host{
		output:      bufio.NewWriter(os.Stdout),
		state:       stateProcessingCommands,
		exprParser:  newExprParser(),
		settings:    newSettings(),
		annotations: make(map[uint16]string),
		width:       termWidth(),
	}

	// Create the emulated console.
	h.console = nes.NewConsole(config)
	h.cpu = h.console.CPU

	// Create a CPU debugger and attach it to the CPU.
	h.handler = newDebugHandler(h)
	h.debugger = cpu.NewDebugger(h.handler)
	h.cpu.AttachDebugger(h.debugger)

	return h
}

// Console returns the emulated console driven by the host.
func (h *Host) Console() *nes.Console {
	return h.console
}

// RunCommands accepts host commands from a reader and outputs the results
// to a writer. If the commands are interactive, a prompt is displayed while
// the host waits for the the next command to be entered.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)
	h.interactive = interactive

	if interactive {
		h.println()
	}

	h.displayPC()

	for {
		h.prompt()

		line, err := h.getLine()
		if err != nil {
			break
		}

		err = h.execute(line)
		if err != nil {
			break
		}
	}
	h.flush()
}

// Look up a single command line and run it. An empty line repeats the
// previous command.
func (h *Host) execute(line string) error {
	var c cmd.Selection
	if strings.TrimSpace(line) != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			h.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			h.println("Command is ambiguous.")
			return nil
		case err != nil:
			h.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if h.lastCmd != nil {
		c = *h.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	tp, ok := c.Command.Data.(*topic)
	if !ok {
		return nil
	}
	h.lastCmd = &c

	return tp.run(h, c)
}

// Break interrupts a running CPU.
func (h *Host) Break() {
	h.println()

	if h.state == stateRunning {
		h.displayPC()
	}
	if h.state == stateProcessingCommands {
		h.prompt()
	}
	h.state = stateProcessingCommands
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.output, format, args...)
	h.flush()
}

func (h *Host) println(args ...any) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return h.input.Text(), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) prompt() {
	if h.interactive {
		h.printf("* ")
		h.flush()
	}
}

func (h *Host) displayPC() {
	if h.interactive {
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)
	}
}

func (h *Host) cmdAnnotate(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	var annotation string
	if len(c.Args) >= 2 {
		annotation = strings.Join(c.Args[1:], " ")
	}

	if annotation == "" {
		delete(h.annotations, addr)
		h.printf("Annotation removed at $%04X.\n", addr)
	} else {
		h.annotations[addr] = annotation
		h.printf("Annotation added at $%04X.\n", addr)
	}

	return nil
}

func (h *Host) cmdBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled")
	h.println("----- -------")
	for _, b := range h.debugger.GetBreakpoints() {
		h.printf("$%04X %v\n", b.Address, !b.Disabled)
	}
	return nil
}

func (h *Host) cmdBreakpointAdd(c cmd.Selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	h.debugger.AddBreakpoint(addr)
	h.printf("Breakpoint added at $%04X.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointRemove(c cmd.Selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetBreakpoint(addr) == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveBreakpoint(addr)
	h.printf("Breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdBreakpointEnable(c cmd.Selection) error {
	return h.enableBreakpoint(c, true)
}

func (h *Host) cmdBreakpointDisable(c cmd.Selection) error {
	return h.enableBreakpoint(c, false)
}

func (h *Host) enableBreakpoint(c cmd.Selection, enable bool) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetBreakpoint(addr)
	if b == nil {
		h.printf("No breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDataBreakpointList(c cmd.Selection) error {
	h.println("Addr  Enabled  Value")
	h.println("----- -------  -----")
	for _, b := range h.debugger.GetDataBreakpoints() {
		if b.Conditional {
			h.printf("$%04X %-5v    $%02X\n", b.Address, !b.Disabled, b.Value)
		} else {
			h.printf("$%04X %-5v    <none>\n", b.Address, !b.Disabled)
		}
	}
	return nil
}

func (h *Host) cmdDataBreakpointAdd(c cmd.Selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if len(c.Args) > 1 {
		value, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.debugger.AddConditionalDataBreakpoint(addr, byte(value))
		h.printf("Conditional data breakpoint added at $%04X for value $%02X.\n", addr, byte(value))
	} else {
		h.debugger.AddDataBreakpoint(addr)
		h.printf("Data breakpoint added at $%04X.\n", addr)
	}

	return nil
}

func (h *Host) cmdDataBreakpointRemove(c cmd.Selection) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	if h.debugger.GetDataBreakpoint(addr) == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	h.debugger.RemoveDataBreakpoint(addr)
	h.printf("Data breakpoint at $%04X removed.\n", addr)
	return nil
}

func (h *Host) cmdDataBreakpointEnable(c cmd.Selection) error {
	return h.enableDataBreakpoint(c, true)
}

func (h *Host) cmdDataBreakpointDisable(c cmd.Selection) error {
	return h.enableDataBreakpoint(c, false)
}

func (h *Host) enableDataBreakpoint(c cmd.Selection, enable bool) error {
	addr, ok := h.addressArg(c)
	if !ok {
		return nil
	}

	b := h.debugger.GetDataBreakpoint(addr)
	if b == nil {
		h.printf("No data breakpoint was set on $%04X.\n", addr)
		return nil
	}

	b.Disabled = !enable
	h.printf("Data breakpoint at $%04X %s.\n", addr, enabledString(enable))
	return nil
}

func (h *Host) cmdDisassemble(c cmd.Selection) error {
	if len(c.Args) == 0 {
		c.Args = []string{"$"}
	}

	var addr uint16
	switch c.Args[0] {
	case "$":
		addr = h.settings.NextDisasmAddr
		if addr == 0 {
			addr = h.cpu.Reg.PC
		}

	case ".":
		addr = h.cpu.Reg.PC

	default:
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	lines := h.settings.DisasmLines
	if len(c.Args) > 1 {
		l, err := h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		lines = int(l)
	}

	for i := 0; i < lines; i++ {
		d, next := h.disassemble(addr, displayAnnotations)
		h.println(d)
		addr = next
	}

	h.settings.NextDisasmAddr = addr
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", lines)}
	return nil
}

func (h *Host) cmdEvaluate(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	expr := strings.Join(c.Args, " ")
	v, err := h.parseExpr(expr)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.printf("$%04X\n", v)
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.displayTopics("")
		return nil
	}

	name := strings.ToLower(strings.Join(c.Args, " "))
	if s, err := cmds.Lookup(name); err == nil && s.Command != nil {
		if tp, ok := s.Command.Data.(*topic); ok {
			h.displayTopic(tp)
			return nil
		}
	}

	if h.displayTopics(name) == 0 {
		h.println("Command not found.")
	}
	return nil
}

func (h *Host) cmdInterruptNMI(c cmd.Selection) error {
	h.console.SetNMILine(true)
	h.console.SetNMILine(false)
	h.println("NMI signaled.")
	return nil
}

func (h *Host) cmdInterruptIRQ(c cmd.Selection) error {
	if len(c.Args) > 0 {
		v, err := stringToBool(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.console.SetIRQLine(v)
	}

	if h.console.IRQLine() {
		h.println("IRQ line asserted.")
	} else {
		h.println("IRQ line released.")
	}
	return nil
}

func (h *Host) cmdLoad(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[1])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	reset := false
	if len(c.Args) > 2 {
		reset, err = stringToBool(c.Args[2])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	if err := h.load(c.Args[0], addr, reset); err != nil {
		h.printf("%v\n", err)
		return nil
	}

	h.displayPC()
	return nil
}

func (h *Host) cmdMemoryDump(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	var addr uint16
	switch c.Args[0] {
	case "$":
		addr = h.settings.NextMemDumpAddr
		if addr == 0 {
			addr = h.cpu.Reg.PC
		}

	case ".":
		addr = h.cpu.Reg.PC

	default:
		a, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		addr = a
	}

	bytes := uint16(h.settings.MemDumpBytes)
	if len(c.Args) >= 2 {
		var err error
		bytes, err = h.parseExpr(c.Args[1])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
	}

	h.dumpMemory(addr, bytes)

	h.settings.NextMemDumpAddr = addr + bytes
	h.lastCmd.Args = []string{"$", fmt.Sprintf("%d", bytes)}
	return nil
}

func (h *Host) cmdMemorySet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c)
		return nil
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	b := make([]byte, 0, len(c.Args)-1)
	for _, arg := range c.Args[1:] {
		v, err := h.parseExpr(arg)
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		b = append(b, byte(v))
	}

	h.console.Bus.StoreBytes(addr, b)
	h.printf("Stored %d byte(s) at $%04X.\n", len(b), addr)
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errQuit
}

func (h *Host) cmdRegister(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		d, _ := h.disassemble(h.cpu.Reg.PC, displayAll)
		h.println(d)

	case 1:
		h.displayHelpText(c)

	default:
		r, err := lookupRegister(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}

		v, err := h.parseExpr(strings.Join(c.Args[1:], " "))
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}

		r.set(&h.cpu.Reg, v)
		switch r.size {
		case 0:
			h.printf("Register %s set to %v.\n", strings.ToUpper(r.name), intToBool(int(v)))
		case 1:
			h.printf("Register %s set to $%02X.\n", strings.ToUpper(r.name), byte(v))
		case 2:
			h.printf("Register %s set to $%04X.\n", strings.ToUpper(r.name), v)
		}
		h.settings.NextDisasmAddr = h.cpu.Reg.PC
	}
	return nil
}

func (h *Host) cmdReset(c cmd.Selection) error {
	h.reset()
	h.printf("CPU reset. PC=$%04X.\n", h.cpu.Reg.PC)
	h.displayPC()
	return nil
}

func (h *Host) cmdRun(c cmd.Selection) error {
	if len(c.Args) > 0 {
		pc, err := h.parseExpr(c.Args[0])
		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.cpu.SetPC(pc)
	}

	h.printf("Running from $%04X. Press ctrl-C to break.\n", h.cpu.Reg.PC)

	h.state = stateRunning
	for h.state == stateRunning {
		h.step()
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Variables:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayHelpText(c)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = errors.Errorf("setting '%s' not found", key)
		case reflect.String:
			err = h.settings.Set(key, value)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		default:
			var v int64
			v, err = h.exprParser.Parse(value, h)
			if err == nil {
				err = h.settings.Set(key, v)
			}
		}

		if err == nil {
			h.println("Setting updated.")
		} else {
			h.printf("%v\n", err)
		}

		h.onSettingsUpdate()
	}

	return nil
}

func (h *Host) cmdStepIn(c cmd.Selection) error {
	h.stepCount(c, h.step)
	return nil
}

func (h *Host) cmdStepOver(c cmd.Selection) error {
	h.stepCount(c, h.stepOver)
	return nil
}

func (h *Host) cmdStepOut(c cmd.Selection) error {
	sp := h.cpu.Reg.SP

	h.state = stateRunning
	for h.state == stateRunning {
		inst := h.cpu.GetInstruction(h.cpu.Reg.PC)
		ret := (inst.Name == "RTS" || inst.Name == "RTI") && h.cpu.Reg.SP >= sp
		h.step()
		if ret && h.cpu.State() == cpu.Running {
			break
		}
	}
	h.state = stateProcessingCommands

	h.displayPC()
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

// Run the step function the number of times requested by the selection's
// first argument, displaying the trailing steps.
func (h *Host) stepCount(c cmd.Selection, fn func()) {
	count := 1
	if len(c.Args) > 0 {
		n, err := h.parseExpr(c.Args[0])
		if err == nil {
			count = int(n)
		}
	}

	h.state = stateRunning
	for i := count - 1; i >= 0 && h.state == stateRunning; i-- {
		fn()
		switch {
		case i == h.settings.MaxStepLines:
			h.println("...")
		case i < h.settings.MaxStepLines:
			h.displayPC()
		}
	}
	h.state = stateProcessingCommands

	h.settings.NextDisasmAddr = h.cpu.Reg.PC
}

// Load a binary file into memory at addr. When reset is true the reset
// vector is pointed at addr and the CPU is reset. Otherwise the program
// counter is set to addr.
func (h *Host) load(filename string, addr uint16, reset bool) error {
	code, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to load '%s'", filepath.Base(filename))
	}
	if len(code) == 0 || int(addr)+len(code) > 0x10000 {
		return errors.Errorf("'%s' does not fit at $%04X", filepath.Base(filename), addr)
	}

	if reset {
		h.console.LoadProgram(addr, code)
		h.serviceReset()
	} else {
		h.console.Bus.StoreBytes(addr, code)
		h.cpu.SetPC(addr)
	}

	h.printf("Loaded '%s' to $%04X..$%04X.\n", filepath.Base(filename), addr, int(addr)+len(code)-1)
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
	return nil
}

// Reset the CPU and service the reset so the program counter holds the
// reset vector.
func (h *Host) reset() {
	h.console.Reset()
	h.serviceReset()
}

func (h *Host) serviceReset() {
	if _, err := h.console.Step(); err != nil {
		h.printf("Reset failed: %v.\n", err)
	}
	h.settings.NextDisasmAddr = h.cpu.Reg.PC
}

func (h *Host) step() {
	_, err := h.console.Step()
	if err != nil {
		h.state = stateBreakpoint
		h.printf("Execution stopped: %v.\n", err)
	}
}

func (h *Host) stepOver() {
	cpu := h.cpu

	// JSR instructions need to be handled specially.
	inst := cpu.GetInstruction(cpu.Reg.PC)
	if inst.Name != "JSR" {
		h.step()
		return
	}

	// Place a step-over breakpoint on the instruction following the JSR.
	// Either modify an already existing breakpoint on that instrution, or
	// create a temporary one.
	next := cpu.Reg.PC + uint16(inst.Length)
	tmpBreakpointCreated := false
	b := h.debugger.GetBreakpoint(next)
	if b == nil {
		b = h.debugger.AddBreakpoint(next)
		tmpBreakpointCreated = true
	}
	b.StepOver = true

	// Run until interrupted.
	for h.state == stateRunning {
		h.step()
	}
	b.StepOver = false

	// If we were interrupted by the temporary step-over breakpoint,
	// then continue as normal.
	if h.state == stateStepOverBreakpoint {
		h.state = stateRunning
	}

	// Remove the temporarily created breakpoint.
	if tmpBreakpointCreated {
		h.debugger.RemoveBreakpoint(next)
	}
}

func (h *Host) onSettingsUpdate() {
	h.exprParser.hexMode = h.settings.HexMode
	if h.settings.BreakOnBrk {
		h.cpu.AttachBrkHandler(h.handler)
	} else {
		h.cpu.AttachBrkHandler(nil)
	}
}

// Parse the selection's first argument as an address, displaying the
// command's help text when it is missing.
func (h *Host) addressArg(c cmd.Selection) (uint16, bool) {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return 0, false
	}

	addr, err := h.parseExpr(c.Args[0])
	if err != nil {
		h.printf("%v\n", err)
		return 0, false
	}
	return addr, true
}

func (h *Host) parseExpr(expr string) (uint16, error) {
	v, err := h.exprParser.Parse(expr, h)
	if err != nil {
		return 0, err
	}

	if v < 0 {
		v = 0x10000 + v
	}
	return uint16(v), nil
}

func (h *Host) disassemble(addr uint16, flags displayFlags) (str string, next uint16) {
	bus := h.console.Bus

	var line string
	line, next = disasm.Disassemble(bus, h.cpu.InstSet, addr)

	b := make([]byte, next-addr)
	bus.PeekBytes(addr, b)

	str = fmt.Sprintf("%04X-   %-8s    %-15s", addr, codeString(b), line)

	if (flags & displayRegisters) != 0 {
		if h.settings.CompactMode {
			str += " " + disasm.GetCompactRegisterString(&h.cpu.Reg)
		} else {
			str += " " + disasm.GetRegisterString(&h.cpu.Reg)
		}
	}

	if (flags & displayCycles) != 0 {
		str += fmt.Sprintf(" C=%-12d", h.cpu.Cycles)
	}

	if (flags & displayAnnotations) != 0 {
		if anno, ok := h.annotations[addr]; ok {
			str += " ; " + anno
		}
	}

	return str, next
}

func (h *Host) dumpMemory(addr0, bytes uint16) {
	if bytes == 0 {
		return
	}

	bus := h.console.Bus

	addr1 := addr0 + bytes - 1
	if addr1 < addr0 {
		addr1 = 0xffff
	}

	buf := []byte("    -" + strings.Repeat(" ", 35))

	// Don't align display for short dumps.
	if addr1-addr0 < 8 {
		addrToBuf(addr0, buf[0:4])
		for a, c1, c2 := uint32(addr0), 6, 32; a <= uint32(addr1); a, c1, c2 = a+1, c1+3, c2+1 {
			m := bus.PeekByte(uint16(a))
			byteToBuf(m, buf[c1:c1+2])
			buf[c2] = toPrintableChar(m)
		}
		h.println(string(buf))
		return
	}

	// Align addr0 and addr1 to 8-byte boundaries.
	start := uint32(addr0) & 0xfff8
	stop := min((uint32(addr1)+8)&0xffff8, 0x10000)

	a := uint16(start)
	for r := start; r < stop; r += 8 {
		addrToBuf(a, buf[0:4])
		for c1, c2 := 6, 32; c1 < 29; c1, c2, a = c1+3, c2+1, a+1 {
			if a >= addr0 && a <= addr1 {
				m := bus.PeekByte(a)
				byteToBuf(m, buf[c1:c1+2])
				buf[c2] = toPrintableChar(m)
			} else {
				buf[c1] = ' '
				buf[c1+1] = ' '
				buf[c2] = ' '
			}
		}
		h.println(string(buf))
	}
}

func (h *Host) displayHelpText(c cmd.Selection) {
	tp, ok := c.Command.Data.(*topic)
	if ok && tp.usage != "" {
		h.printf("Syntax: %s\n", tp.usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) displayTopic(tp *topic) {
	if tp.usage != "" {
		h.printf("Syntax: %s\n\n", tp.usage)
	}
	switch {
	case tp.desc != "":
		h.printf("Description:\n%s\n\n", indentWrap(3, h.width, tp.desc))
	case tp.brief != "":
		h.printf("Description:\n%s.\n\n", indentWrap(3, h.width, tp.brief))
	}
}

// Display the commands directly under the named subtree, or the top-level
// commands when name is empty. Return the number of commands displayed.
func (h *Host) displayTopics(name string) int {
	title := "go2a03"
	if name != "" {
		title = name
	}

	n := 0
	for _, tp := range topics {
		if tp.brief == "" {
			continue
		}
		var sub string
		switch {
		case name == "":
			sub = tp.path
		case strings.HasPrefix(tp.path, name+" "):
			sub = tp.path[len(name)+1:]
		default:
			continue
		}
		if strings.Contains(sub, " ") {
			continue
		}
		if n == 0 {
			h.printf("%s commands:\n", title)
		}
		h.printf("    %-15s  %s\n", sub, tp.brief)
		n++
	}
	return n
}

func (h *Host) resolveIdentifier(s string) (int64, error) {
	s = strings.ToLower(s)
	if s == "." {
		s = "pc"
	}

	for _, r := range registers {
		if r.name == s {
			return int64(r.get(&h.cpu.Reg)), nil
		}
	}

	return 0, errors.Errorf("identifier '%s' not found", s)
}

func (h *Host) onBreakpoint(cpu *cpu.CPU, b *cpu.Breakpoint) {
	if b.StepOver {
		h.state = stateStepOverBreakpoint
	} else {
		h.state = stateBreakpoint
		h.printf("Breakpoint hit at $%04X.\n", b.Address)
		h.displayPC()
	}
}

func (h *Host) onDataBreakpoint(cpu *cpu.CPU, b *cpu.DataBreakpoint) {
	h.printf("Data breakpoint hit on address $%04X.\n", b.Address)

	h.state = stateBreakpoint

	if cpu.LastPC != cpu.Reg.PC {
		d, _ := h.disassemble(cpu.LastPC, displayAll)
		h.println(d)
	}

	h.displayPC()
}

func (h *Host) onBrk(cpu *cpu.CPU) {
	h.state = stateBreakpoint
	h.printf("BRK encountered at $%04X.\n", cpu.Reg.PC)
}

func enabledString(enable bool) string {
	if enable {
		return "enabled"
	}
	return "disabled"
}
