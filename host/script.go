// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/beevik/cmd"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// RunScript runs a Lua script against the host, writing script and
// command output to w.
func (h *Host) RunScript(filename string, w io.Writer) error {
	h.output = bufio.NewWriter(w)
	defer h.flush()
	return h.runScript(filename)
}

func (h *Host) cmdScript(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c)
		return nil
	}

	err := h.runScript(c.Args[0])
	if err == errQuit {
		return err
	}
	if err != nil {
		h.printf("%v\n", err)
	}
	return nil
}

func (h *Host) runScript(filename string) error {
	L := lua.NewState()
	defer L.Close()

	var quit bool
	h.registerScriptFuncs(L, &quit)

	err := L.DoFile(filename)
	if quit {
		return errQuit
	}
	if err != nil {
		return errors.Wrapf(err, "script '%s' failed", filepath.Base(filename))
	}
	return nil
}

// Install the global functions a script uses to drive the console.
func (h *Host) registerScriptFuncs(L *lua.LState, quit *bool) {
	funcs := map[string]lua.LGFunction{
		// step([count]) executes count steps and returns the cycles used.
		"step": func(L *lua.LState) int {
			n := L.OptInt(1, 1)
			total := 0
			for i := 0; i < n; i++ {
				c, err := h.console.Step()
				total += c
				if err != nil {
					L.RaiseError("%v", err)
				}
			}
			L.Push(lua.LNumber(total))
			return 1
		},

		// run(cycles) runs for at least the given number of cycles, or
		// until a BRK stops execution, and returns the cycles that elapsed.
		"run": func(L *lua.LState) int {
			n := L.CheckInt(1)
			elapsed, err := h.console.Run(context.Background(), uint64(n))
			if err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LNumber(elapsed))
			return 1
		},

		"reg": func(L *lua.LState) int {
			r, err := lookupRegister(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
			}
			L.Push(lua.LNumber(r.get(&h.cpu.Reg)))
			return 1
		},

		"setreg": func(L *lua.LState) int {
			r, err := lookupRegister(L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
			}
			r.set(&h.cpu.Reg, uint16(L.CheckInt(2)))
			return 0
		},

		"peek": func(L *lua.LState) int {
			L.Push(lua.LNumber(h.console.Bus.PeekByte(uint16(L.CheckInt(1)))))
			return 1
		},

		"poke": func(L *lua.LState) int {
			h.console.Bus.StoreByte(uint16(L.CheckInt(1)), byte(L.CheckInt(2)))
			return 0
		},

		"reset": func(L *lua.LState) int {
			h.reset()
			return 0
		},

		"nmi": func(L *lua.LState) int {
			h.console.SetNMILine(true)
			h.console.SetNMILine(false)
			return 0
		},

		"irq": func(L *lua.LState) int {
			h.console.SetIRQLine(L.CheckBool(1))
			return 0
		},

		"cycles": func(L *lua.LState) int {
			L.Push(lua.LNumber(h.cpu.Cycles))
			return 1
		},

		// exec(line) runs a host command line.
		"exec": func(L *lua.LState) int {
			if err := h.execute(L.CheckString(1)); err != nil {
				*quit = true
				L.RaiseError("%v", err)
			}
			return 0
		},

		"print": func(L *lua.LState) int {
			args := make([]string, L.GetTop())
			for i := range args {
				args[i] = L.Get(i + 1).String()
			}
			h.println(strings.Join(args, "\t"))
			return 0
		},
	}

	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}
