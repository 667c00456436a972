// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errExprParse = errors.New("expression syntax error")

// A resolver turns identifiers found in an expression into values.
type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// Binary operators grouped by precedence, lowest first.
var binaryOps = [][]string{
	{"|"},
	{"^"},
	{"&"},
	{"<<", ">>"},
	{"+", "-"},
	{"*", "/", "%"},
}

// An exprParser evaluates integer expressions typed at the host prompt.
// Numbers are decimal unless prefixed with '$' or "0x" (hexadecimal) or
// '%' (binary), or unless hexMode is set. Quoted characters evaluate to
// their byte value.
type exprParser struct {
	hexMode bool
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// exprState holds the state of a single evaluation.
type exprState struct {
	p   *exprParser
	r   resolver
	s   string
	pos int
}

// Parse evaluates the expression, resolving identifiers through r.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	st := &exprState{p: p, r: r, s: expr}
	v, err := st.parseBinary(0)
	if err != nil {
		return 0, err
	}
	st.skipSpace()
	if st.pos != len(st.s) {
		return 0, errExprParse
	}
	return v, nil
}

func (st *exprState) skipSpace() {
	for st.pos < len(st.s) && (st.s[st.pos] == ' ' || st.s[st.pos] == '\t') {
		st.pos++
	}
}

// Return the binary operator at the current position if it belongs to
// the given precedence level.
func (st *exprState) peekOp(level int) string {
	st.skipSpace()
	for _, op := range binaryOps[level] {
		if strings.HasPrefix(st.s[st.pos:], op) {
			return op
		}
	}
	return ""
}

func (st *exprState) parseBinary(level int) (int64, error) {
	if level == len(binaryOps) {
		return st.parseUnary()
	}

	a, err := st.parseBinary(level + 1)
	if err != nil {
		return 0, err
	}

	for {
		op := st.peekOp(level)
		if op == "" {
			return a, nil
		}
		st.pos += len(op)

		b, err := st.parseBinary(level + 1)
		if err != nil {
			return 0, err
		}

		switch op {
		case "|":
			a |= b
		case "^":
			a ^= b
		case "&":
			a &= b
		case "<<":
			a <<= uint(b)
		case ">>":
			a >>= uint(b)
		case "+":
			a += b
		case "-":
			a -= b
		case "*":
			a *= b
		case "/", "%":
			if b == 0 {
				return 0, errors.New("divide by zero")
			}
			if op == "/" {
				a /= b
			} else {
				a %= b
			}
		}
	}
}

func (st *exprState) parseUnary() (int64, error) {
	st.skipSpace()
	if st.pos >= len(st.s) {
		return 0, errExprParse
	}

	switch c := st.s[st.pos]; c {
	case '-', '+', '~':
		st.pos++
		v, err := st.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '-':
			return -v, nil
		case '~':
			return ^v, nil
		}
		return v, nil

	case '(':
		st.pos++
		v, err := st.parseBinary(0)
		if err != nil {
			return 0, err
		}
		st.skipSpace()
		if st.pos >= len(st.s) || st.s[st.pos] != ')' {
			return 0, errExprParse
		}
		st.pos++
		return v, nil

	case '$':
		st.pos++
		return st.parseNumber(16)

	case '%':
		st.pos++
		return st.parseNumber(2)

	case '\'':
		if st.pos+2 >= len(st.s) || st.s[st.pos+2] != '\'' {
			return 0, errExprParse
		}
		v := int64(st.s[st.pos+1])
		st.pos += 3
		return v, nil
	}

	if strings.HasPrefix(st.s[st.pos:], "0x") {
		st.pos += 2
		return st.parseNumber(16)
	}
	if isDigit(st.s[st.pos]) {
		if st.p.hexMode {
			return st.parseNumber(16)
		}
		return st.parseNumber(10)
	}
	if isIdentStart(st.s[st.pos]) {
		start := st.pos
		for st.pos < len(st.s) && isIdentChar(st.s[st.pos]) {
			st.pos++
		}
		if st.r == nil {
			return 0, errors.Errorf("identifier '%s' not found", st.s[start:st.pos])
		}
		return st.r.resolveIdentifier(st.s[start:st.pos])
	}
	return 0, errExprParse
}

func (st *exprState) parseNumber(base int) (int64, error) {
	start := st.pos
	for st.pos < len(st.s) && isHexDigit(st.s[st.pos]) {
		st.pos++
	}
	if start == st.pos {
		return 0, errExprParse
	}
	v, err := strconv.ParseInt(st.s[start:st.pos], base, 64)
	if err != nil {
		return 0, errors.Errorf("invalid number '%s'", st.s[start:st.pos])
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '.'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
