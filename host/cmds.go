// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"

	"github.com/beevik/cmd"
)

var cmds *cmd.Tree

// A topic is the data stored with each command in the command tree. It
// carries the command's help text alongside the host callback.
type topic struct {
	path  string
	brief string
	desc  string
	usage string
	run   func(*Host, cmd.Selection) error
}

// Topics in the order they were added, used by the help command.
var topics []*topic

func addCommand(t *cmd.Tree, prefix string, d cmd.CommandDescriptor) {
	tp := &topic{
		path:  strings.TrimSpace(prefix + " " + d.Name),
		brief: d.Brief,
		desc:  d.Description,
		usage: d.Usage,
		run:   d.Data.(func(*Host, cmd.Selection) error),
	}
	topics = append(topics, tp)
	d.Data = tp
	t.AddCommand(d)
}

func addSubtree(t *cmd.Tree, d cmd.TreeDescriptor) *cmd.Tree {
	topics = append(topics, &topic{path: d.Name, brief: d.Brief})
	return t.AddSubtree(d)
}

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "go2a03"})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "annotate",
		Brief: "Annotate an address",
		Description: "Provide a code annotation at a memory address." +
			" When disassembling code at this address, the annotation will" +
			" be displayed.",
		Usage: "annotate <address> <string>",
		Data:  (*Host).cmdAnnotate,
	})

	// Breakpoint commands
	bp := addSubtree(root, cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Host).cmdBreakpointList,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a breakpoint",
		Description: "Add a breakpoint at the specified address." +
			" The breakpoint starts enabled.",
		Usage: "breakpoint add <address>",
		Data:  (*Host).cmdBreakpointAdd,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove a breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Host).cmdBreakpointRemove,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a breakpoint",
		Description: "Enable a previously added breakpoint.",
		Usage:       "breakpoint enable <address>",
		Data:        (*Host).cmdBreakpointEnable,
	})
	addCommand(bp, "breakpoint", cmd.CommandDescriptor{
		Name:  "disable",
		Brief: "Disable a breakpoint",
		Description: "Disable a previously added breakpoint. This" +
			" prevents the breakpoint from being hit when running the" +
			" CPU.",
		Usage: "breakpoint disable <address>",
		Data:  (*Host).cmdBreakpointDisable,
	})

	// Data breakpoint commands
	db := addSubtree(root, cmd.TreeDescriptor{Name: "databreakpoint", Brief: "Data breakpoint commands"})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List data breakpoints",
		Description: "List all current data breakpoints.",
		Usage:       "databreakpoint list",
		Data:        (*Host).cmdDataBreakpointList,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:  "add",
		Brief: "Add a data breakpoint",
		Description: "Add a new data breakpoint at the specified" +
			" memory address. When the CPU stores data at this address, the" +
			" breakpoint will stop the CPU. Optionally, a byte" +
			" value may be specified, and the CPU will stop only" +
			" when this value is stored. The data breakpoint starts" +
			" enabled.",
		Usage: "databreakpoint add <address> [<value>]",
		Data:  (*Host).cmdDataBreakpointAdd,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:  "remove",
		Brief: "Remove a data breakpoint",
		Description: "Remove a previously added data breakpoint at" +
			" the specified memory address.",
		Usage: "databreakpoint remove <address>",
		Data:  (*Host).cmdDataBreakpointRemove,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "enable",
		Brief:       "Enable a data breakpoint",
		Description: "Enable a previously added data breakpoint.",
		Usage:       "databreakpoint enable <address>",
		Data:        (*Host).cmdDataBreakpointEnable,
	})
	addCommand(db, "databreakpoint", cmd.CommandDescriptor{
		Name:        "disable",
		Brief:       "Disable a data breakpoint",
		Description: "Disable a previously added data breakpoint.",
		Usage:       "databreakpoint disable <address>",
		Data:        (*Host).cmdDataBreakpointDisable,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble code",
		Description: "Disassemble machine code starting at the requested" +
			" address. The number of instruction lines to disassemble may be" +
			" specified as an option. If no address is specified, the" +
			" disassembly continues from where the last disassembly left off.",
		Usage: "disassemble [<address>] [<lines>]",
		Data:  (*Host).cmdDisassemble,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "evaluate",
		Brief: "Evaluate an expression",
		Description: "Evaluate a mathematical expression. Registers may" +
			" be used as identifiers.",
		Usage: "evaluate <expression>",
		Data:  (*Host).cmdEvaluate,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "graph",
		Brief: "Write a graph of the CPU state",
		Description: "Write a Graphviz dot file describing the current CPU" +
			" state, the instruction about to execute and all breakpoints.",
		Usage: "graph <filename>",
		Data:  (*Host).cmdGraph,
	})

	// Interrupt commands
	in := addSubtree(root, cmd.TreeDescriptor{Name: "interrupt", Brief: "Interrupt line commands"})
	addCommand(in, "interrupt", cmd.CommandDescriptor{
		Name:  "nmi",
		Brief: "Signal a non-maskable interrupt",
		Description: "Pulse the NMI line. The CPU services the interrupt" +
			" before its next instruction.",
		Usage: "interrupt nmi",
		Data:  (*Host).cmdInterruptNMI,
	})
	addCommand(in, "interrupt", cmd.CommandDescriptor{
		Name:  "irq",
		Brief: "Drive the IRQ line",
		Description: "Assert (1) or release (0) the IRQ line. While the line" +
			" is asserted and the interrupt disable flag is clear, the CPU" +
			" services an IRQ before each instruction. With no argument the" +
			" current line level is displayed.",
		Usage: "interrupt irq [<0|1>]",
		Data:  (*Host).cmdInterruptIRQ,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "load",
		Brief: "Load a binary file",
		Description: "Load the contents of a binary file into the emulated" +
			" system's memory at the requested address and set the program" +
			" counter to it. If the reset flag is true, the reset vector is" +
			" pointed at the address and the CPU is reset instead.",
		Usage: "load <filename> <address> [<reset>]",
		Data:  (*Host).cmdLoad,
	})

	// Memory commands
	me := addSubtree(root, cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	addCommand(me, "memory", cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump memory at address",
		Description: "Dump the contents of memory starting from the" +
			" specified address. The number of bytes to dump may be" +
			" specified as an option. Reads are side-effect free.",
		Usage: "memory dump <address> [<bytes>]",
		Data:  (*Host).cmdMemoryDump,
	})
	addCommand(me, "memory", cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set memory at address",
		Description: "Set the contents of memory starting from the specified" +
			" address. The values to assign should be a series of" +
			" space-separated byte values.",
		Usage: "memory set <address> <byte> [<byte> ...]",
		Data:  (*Host).cmdMemorySet,
	})

	addCommand(root, "", cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "register",
		Brief: "View or change register values",
		Description: "When used without arguments, this command displays" +
			" the current contents of the CPU registers. When used with" +
			" arguments, this command changes the value of a register or" +
			" status flag. Register names may be abbreviated.",
		Usage: "register [<name> <value>]",
		Data:  (*Host).cmdRegister,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "reset",
		Brief: "Reset the CPU",
		Description: "Reset the CPU. The program counter is loaded from the" +
			" reset vector at $FFFC, interrupts are disabled and 7 cycles" +
			" elapse.",
		Usage: "reset",
		Data:  (*Host).cmdReset,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run the CPU",
		Description: "Run the CPU until a breakpoint is hit, the CPU halts" +
			" or the user types Ctrl-C. An optional address sets the" +
			" program counter first.",
		Usage: "run [<address>]",
		Data:  (*Host).cmdRun,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "script",
		Brief: "Run a Lua script",
		Description: "Run a Lua script against the emulated system. Scripts" +
			" may call step, run, reg, setreg, peek, poke, reset, nmi, irq," +
			" cycles and exec.",
		Usage: "script <filename>",
		Data:  (*Host).cmdScript,
	})
	addCommand(root, "", cmd.CommandDescriptor{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see the" +
			" current values of all configuration variables, type set" +
			" without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Host).cmdSet,
	})

	// Step commands
	st := addSubtree(root, cmd.TreeDescriptor{Name: "step", Brief: "Step the debugger"})
	addCommand(st, "step", cmd.CommandDescriptor{
		Name:  "in",
		Brief: "Step into next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, step into the subroutine." +
			" The number of steps may be specified as an option.",
		Usage: "step in [<count>]",
		Data:  (*Host).cmdStepIn,
	})
	addCommand(st, "step", cmd.CommandDescriptor{
		Name:  "over",
		Brief: "Step over next instruction",
		Description: "Step the CPU by a single instruction. If the" +
			" instruction is a subroutine call, step over the subroutine." +
			" The number of steps may be specified as an option.",
		Usage: "step over [<count>]",
		Data:  (*Host).cmdStepOver,
	})
	addCommand(st, "step", cmd.CommandDescriptor{
		Name:  "out",
		Brief: "Step out of the current subroutine",
		Description: "Run the CPU until it returns from the current" +
			" subroutine or interrupt handler.",
		Usage: "step out",
		Data:  (*Host).cmdStepOut,
	})

	// Trace commands
	tr := addSubtree(root, cmd.TreeDescriptor{Name: "trace", Brief: "Execution trace commands"})
	addCommand(tr, "trace", cmd.CommandDescriptor{
		Name:  "on",
		Brief: "Start an execution trace",
		Description: "Write one nestest-format log line for every" +
			" instruction executed. Without a filename the trace is written" +
			" to the console.",
		Usage: "trace on [<filename>]",
		Data:  (*Host).cmdTraceOn,
	})
	addCommand(tr, "trace", cmd.CommandDescriptor{
		Name:        "off",
		Brief:       "Stop the execution trace",
		Description: "Stop tracing and close the trace file.",
		Usage:       "trace off",
		Data:        (*Host).cmdTraceOff,
	})

	// Add command shortcuts.
	root.AddShortcut("b", "breakpoint")
	root.AddShortcut("bp", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("d", "disassemble")
	root.AddShortcut("db", "databreakpoint")
	root.AddShortcut("dbp", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("dbe", "databreakpoint enable")
	root.AddShortcut("dbd", "databreakpoint disable")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("nmi", "interrupt nmi")
	root.AddShortcut("irq", "interrupt irq")
	root.AddShortcut("r", "register")
	root.AddShortcut("s", "step over")
	root.AddShortcut("si", "step in")
	root.AddShortcut("so", "step out")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "register")

	cmds = root
}
