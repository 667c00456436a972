// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/pkg/errors"
)

// Host variables changed with the "set" command. Integer settings may
// carry a "range" tag holding their inclusive bounds.
type settings struct {
	HexMode         bool   `doc:"hexadecimal input mode"`
	CompactMode     bool   `doc:"compact register output"`
	BreakOnBrk      bool   `doc:"stop running when BRK is reached"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump" range:"1,4096"`
	DisasmLines     int    `doc:"default number of lines to disassemble" range:"1,256"`
	MaxStepLines    int    `doc:"max lines to disassemble when stepping" range:"0,1024"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
}

func newSettings() *settings {
	return &settings{
		MemDumpBytes: 64,
		DisasmLines:  10,
		MaxStepLines: 20,
	}
}

type settingsField struct {
	name     string
	index    int
	typ      reflect.Type
	doc      string
	min, max int64
}

func (f *settingsField) kind() reflect.Kind {
	return f.typ.Kind()
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	st := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, st.NumField())
	for i := range settingsFields {
		sf := st.Field(i)
		f := &settingsFields[i]
		f.name, f.index, f.typ = sf.Name, i, sf.Type
		f.doc = sf.Tag.Get("doc")

		switch sf.Type.Kind() {
		case reflect.Int:
			f.min, f.max = 0, 1<<31-1
		case reflect.Uint8, reflect.Uint16:
			f.min, f.max = 0, 1<<sf.Type.Bits()-1
		}
		if r, ok := sf.Tag.Lookup("range"); ok {
			f.min, f.max = parseRange(sf.Name, r)
		}

		settingsTree.Add(strings.ToLower(sf.Name), f)
	}
}

func parseRange(name, r string) (lo, hi int64) {
	a, b, ok := strings.Cut(r, ",")
	if ok {
		var err1, err2 error
		lo, err1 = strconv.ParseInt(a, 10, 64)
		hi, err2 = strconv.ParseInt(b, 10, 64)
		ok = err1 == nil && err2 == nil && lo <= hi
	}
	if !ok {
		panic("bad range tag on setting " + name)
	}
	return lo, hi
}

func lookupSetting(key string) (*settingsField, error) {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return nil, errors.Wrapf(err, "setting '%s'", key)
	}
	return f, nil
}

// Display writes every setting and its current value to w.
func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i := range settingsFields {
		f := &settingsFields[i]
		v := value.Field(f.index)

		var vs string
		switch f.kind() {
		case reflect.Uint16:
			vs = fmt.Sprintf("$%04X", v.Uint())
		case reflect.String:
			vs = strconv.Quote(v.String())
		default:
			vs = fmt.Sprint(v.Interface())
		}
		fmt.Fprintf(w, "    %-16s %-10s (%s)\n", f.name, vs, f.doc)
	}
}

// Kind returns the kind of the setting named by key, or reflect.Invalid
// if there is no such setting.
func (s *settings) Kind(key string) reflect.Kind {
	f, err := lookupSetting(key)
	if err != nil {
		return reflect.Invalid
	}
	return f.kind()
}

// Set assigns value to the setting named by key. Integer values outside
// the setting's range are rejected and leave the setting unchanged.
func (s *settings) Set(key string, value any) error {
	f, err := lookupSetting(key)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(value)
	isString := v.Kind() == reflect.String
	if isString != (f.kind() == reflect.String) || !v.Type().ConvertibleTo(f.typ) {
		return errors.Errorf("invalid value for setting %s", f.name)
	}

	var n int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > uint64(f.max) {
			n = f.max + 1
		} else {
			n = int64(v.Uint())
		}
	default:
		reflect.ValueOf(s).Elem().Field(f.index).Set(v.Convert(f.typ))
		return nil
	}

	if n < f.min || n > f.max {
		return errors.Errorf("setting %s must be between %d and %d", f.name, f.min, f.max)
	}
	reflect.ValueOf(s).Elem().Field(f.index).Set(v.Convert(f.typ))
	return nil
}
