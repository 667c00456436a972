// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/cmd"
	"github.com/famiclone/go2a03/cpu"
	"github.com/famiclone/go2a03/disasm"
	"github.com/pkg/errors"
)

// A traceOutput receives one nestest-format line per executed
// instruction.
type traceOutput struct {
	w    *bufio.Writer
	file io.Closer
	name string
}

// StartTrace begins writing an execution trace to the named file. With an
// empty filename the trace is written to the host output.
func (h *Host) StartTrace(filename string) error {
	h.StopTrace()

	t := &traceOutput{name: "console"}
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return errors.Wrap(err, "unable to start trace")
		}
		t.w, t.file, t.name = bufio.NewWriter(f), f, filepath.Base(filename)
	}
	h.trace = t

	bus := h.console.Bus
	h.cpu.AttachTracer(cpu.TracerFunc(func(s *cpu.Snapshot) {
		line := disasm.Trace(s, bus)
		if t.w == nil {
			h.println(line)
			return
		}
		t.w.WriteString(line)
		t.w.WriteByte('\n')
	}))
	return nil
}

// StopTrace stops the execution trace, flushing and closing its file.
func (h *Host) StopTrace() error {
	if h.trace == nil {
		return nil
	}

	h.cpu.AttachTracer(nil)
	t := h.trace
	h.trace = nil

	if t.w == nil {
		return nil
	}
	if err := t.w.Flush(); err != nil {
		t.file.Close()
		return errors.Wrapf(err, "unable to write trace '%s'", t.name)
	}
	return t.file.Close()
}

func (h *Host) cmdTraceOn(c cmd.Selection) error {
	var filename string
	if len(c.Args) > 0 {
		filename = c.Args[0]
	}

	if err := h.StartTrace(filename); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.printf("Tracing to %s.\n", h.trace.name)
	return nil
}

func (h *Host) cmdTraceOff(c cmd.Selection) error {
	if h.trace == nil {
		h.println("Trace is not active.")
		return nil
	}

	name := h.trace.name
	if err := h.StopTrace(); err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.printf("Trace to %s stopped.\n", name)
	return nil
}
