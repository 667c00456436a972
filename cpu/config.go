// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "fmt"

// UnofficialMode selects how the CPU treats opcodes outside the
// documented instruction set.
type UnofficialMode byte

const (
	// UnofficialEmulate executes unofficial opcodes with their NMOS
	// hardware behavior.
	UnofficialEmulate UnofficialMode = iota

	// UnofficialNOP executes unofficial opcodes as no-ops of the same
	// length and cycle cost.
	UnofficialNOP

	// UnofficialStrict refuses to execute unofficial opcodes and reports
	// an UnofficialOpcodeError instead.
	UnofficialStrict
)

var unofficialModeNames = [...]string{
	UnofficialEmulate: "emulate",
	UnofficialNOP:     "nop",
	UnofficialStrict:  "strict",
}

func (m UnofficialMode) String() string {
	if int(m) < len(unofficialModeNames) {
		return unofficialModeNames[m]
	}
	return fmt.Sprintf("UnofficialMode(%d)", m)
}

// ParseUnofficialMode converts a policy name ("emulate", "nop" or
// "strict") into an UnofficialMode.
func ParseUnofficialMode(s string) (UnofficialMode, error) {
	for i, name := range unofficialModeNames {
		if name == s {
			return UnofficialMode(i), nil
		}
	}
	return UnofficialEmulate, fmt.Errorf("unknown unofficial opcode mode %q", s)
}

// Config holds the construction-time options of a CPU. The zero value
// describes a stock 2A03.
type Config struct {
	// Unofficial selects the unofficial opcode policy.
	Unofficial UnofficialMode

	// Decimal enables BCD arithmetic in ADC and SBC when the decimal flag
	// is set. The 2A03 lacks the BCD circuitry, so by default the flag can
	// be set and cleared but arithmetic is always binary. When enabled,
	// flags follow the NMOS 6502: ADC takes Z from the binary sum and
	// SBC takes every flag from the binary difference.
	Decimal bool
}
