// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"os"
	"path/filepath"

	"github.com/beevik/cmd"
	"github.com/bradleyjkemp/memviz"
	"github.com/famiclone/go2a03/cpu"
	"github.com/pkg/errors"
)

// The CPU state rendered by the graph command.
type graphState struct {
	Registers       cpu.Registers
	Cycles          uint64
	State           string
	Pending         string
	Next            string
	Breakpoints     []*cpu.Breakpoint
	DataBreakpoints []*cpu.DataBreakpoint
}

func (h *Host) cmdGraph(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	filename := c.Args[0]
	if filepath.Ext(filename) == "" {
		filename += ".dot"
	}

	if err := h.writeGraph(filename); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.printf("CPU state graph written to '%s'.\n", filepath.Base(filename))
	return nil
}

func (h *Host) writeGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "unable to create graph")
	}
	defer f.Close()

	next, _ := h.disassemble(h.cpu.Reg.PC, 0)
	s := &graphState{
		Registers:       h.cpu.Reg,
		Cycles:          h.cpu.Cycles,
		State:           h.cpu.State().String(),
		Pending:         h.cpu.Pending().String(),
		Next:            next,
		Breakpoints:     h.debugger.GetBreakpoints(),
		DataBreakpoints: h.debugger.GetDataBreakpoints(),
	}
	memviz.Map(f, s)
	return f.Close()
}
