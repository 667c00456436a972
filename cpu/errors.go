// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrJammed = errors.New("cpu halted by JAM opcode")
)

// UnofficialOpcodeError is returned by Step when the CPU is configured
// with UnofficialStrict and reaches an unofficial opcode. The opcode is
// not executed.
type UnofficialOpcodeError struct {
	Opcode byte   // offending opcode value
	Addr   uint16 // address of the opcode
}

func (e *UnofficialOpcodeError) Error() string {
	return fmt.Sprintf("unofficial opcode $%02X at $%04X", e.Opcode, e.Addr)
}
