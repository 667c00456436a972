// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/beevik/term"
	"github.com/famiclone/go2a03/cpu"
	"github.com/famiclone/go2a03/host"
	"github.com/famiclone/go2a03/statsview"
)

var (
	unofficial string
	decimal    bool
	trace      string
	stats      bool
	statsAddr  string
)

func init() {
	flag.StringVar(&unofficial, "unofficial", "emulate", "unofficial opcode policy: emulate, nop or strict")
	flag.BoolVar(&decimal, "decimal", false, "enable BCD arithmetic when the decimal flag is set")
	flag.StringVar(&trace, "trace", "", "write a nestest-format execution trace to `file`")
	flag.BoolVar(&stats, "statsview", false, "serve runtime statistics over HTTP")
	flag.StringVar(&statsAddr, "statsaddr", statsview.DefaultAddress, "statsview listen `address`")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: go2a03 [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	mode, err := cpu.ParseUnofficialMode(unofficial)
	if err != nil {
		exitOnError(err)
	}

	h := host.New(cpu.Config{Unofficial: mode, Decimal: decimal})

	if stats {
		srv := statsview.New(statsAddr)
		srv.Start(os.Stdout)
		defer srv.Stop()
	}

	if trace != "" {
		if err := h.StartTrace(trace); err != nil {
			exitOnError(err)
		}
		defer h.StopTrace()
	}

	// Run commands contained in command-line files. Files ending in .lua
	// are run as scripts.
	for _, filename := range flag.Args() {
		if strings.ToLower(filepath.Ext(filename)) == ".lua" {
			if err := h.RunScript(filename, os.Stdout); err != nil {
				exitOnError(err)
			}
			continue
		}

		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands interactively.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
