// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/famiclone/go2a03/cpu"
	"github.com/pkg/errors"
)

// A register describes a CPU register or status flag that can be viewed
// and changed from the host.
type register struct {
	name string
	size int // 0 for a status flag, otherwise the width in bytes
	get  func(r *cpu.Registers) uint16
	set  func(r *cpu.Registers, v uint16)
}

var registers = []*register{
	{"a", 1,
		func(r *cpu.Registers) uint16 { return uint16(r.A) },
		func(r *cpu.Registers, v uint16) { r.A = byte(v) }},
	{"x", 1,
		func(r *cpu.Registers) uint16 { return uint16(r.X) },
		func(r *cpu.Registers, v uint16) { r.X = byte(v) }},
	{"y", 1,
		func(r *cpu.Registers) uint16 { return uint16(r.Y) },
		func(r *cpu.Registers, v uint16) { r.Y = byte(v) }},
	{"sp", 1,
		func(r *cpu.Registers) uint16 { return uint16(r.SP) },
		func(r *cpu.Registers, v uint16) { r.SP = byte(v) }},
	{"pc", 2,
		func(r *cpu.Registers) uint16 { return r.PC },
		func(r *cpu.Registers, v uint16) { r.PC = v }},
	{"carry", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.Carry) },
		func(r *cpu.Registers, v uint16) { r.Carry = v != 0 }},
	{"zero", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.Zero) },
		func(r *cpu.Registers, v uint16) { r.Zero = v != 0 }},
	{"interrupt", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.InterruptDisable) },
		func(r *cpu.Registers, v uint16) { r.InterruptDisable = v != 0 }},
	{"decimal", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.Decimal) },
		func(r *cpu.Registers, v uint16) { r.Decimal = v != 0 }},
	{"overflow", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.Overflow) },
		func(r *cpu.Registers, v uint16) { r.Overflow = v != 0 }},
	{"sign", 0,
		func(r *cpu.Registers) uint16 { return boolToUint16(r.Sign) },
		func(r *cpu.Registers, v uint16) { r.Sign = v != 0 }},
}

var registerTree = prefixtree.New[*register]()

func init() {
	for _, r := range registers {
		registerTree.Add(r.name, r)
	}
}

// Find a register by name or unique name prefix. "." is an alias for the
// program counter.
func lookupRegister(name string) (*register, error) {
	name = strings.ToLower(name)
	if name == "." {
		name = "pc"
	}

	r, err := registerTree.FindValue(name)
	if err != nil {
		return nil, errors.Wrapf(err, "register '%s'", name)
	}
	return r, nil
}

func boolToUint16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
