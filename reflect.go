// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var signalType = reflect.TypeOf((*Signal)(nil))

type fieldSpec struct {
	index  int
	name   string
	width  int
	notify bool
}

// Mount allocates the signals of a custom component from its field tags, then
// registers it with the circuit.
//
// comp must be a pointer to a struct. Signals are exported fields of type
// *Signal tagged with `hw:"in"` for notifying signals or `hw:"out"` for plain
// ones. The tag may be followed by the signal width (1 by default) and name
// (the field name in lowercase by default):
//
//	type mux4 struct {
//		hwbus.Base
//		A   *hwbus.Signal `hw:"in,4"`
//		B   *hwbus.Signal `hw:"in,4"`
//		S   *hwbus.Signal `hw:"in,1,sel"` // single pin named "sel"
//		Out *hwbus.Signal `hw:"out,4"`
//	}
//
// No signal is allocated if an error is returned.
//
func (c *Circuit) Mount(comp Component) error {
	v := reflect.ValueOf(comp)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("unsupported type %T for component %q", comp, comp.Name())
	}
	if c.reg.Contains(comp) {
		return errors.Wrap(ErrDuplicate, comp.Name())
	}
	e := v.Elem()
	fs, err := parseFields(e.Type())
	if err != nil {
		return err
	}
	for _, f := range fs {
		s := c.newSignal(comp, f.name, f.width, f.notify)
		e.Field(f.index).Set(reflect.ValueOf(s))
	}
	return c.Add(comp)
}

func parseFields(typ reflect.Type) ([]fieldSpec, error) {
	var fs []fieldSpec
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		if !f.IsExported() || f.Type != signalType {
			return nil, errors.Errorf("unsupported field %q of type %v in %q", f.Name, f.Type, typ.Name())
		}
		tv := strings.Split(tag, ",")
		if len(tv) > 3 {
			return nil, errors.Wrapf(ErrSyntax, "tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		spec := fieldSpec{index: i, name: strings.ToLower(f.Name), width: 1}
		switch strings.TrimSpace(tv[0]) {
		case "in":
			spec.notify = true
		case "out":
		default:
			return nil, errors.Wrapf(ErrSyntax, "tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		if len(tv) > 1 && strings.TrimSpace(tv[1]) != "" {
			w, err := strconv.Atoi(strings.TrimSpace(tv[1]))
			if err != nil || w < 1 || w > MaxWidth {
				return nil, errors.Wrapf(ErrSyntax, "invalid width in tag %q for field %q in %q", tag, f.Name, typ.Name())
			}
			spec.width = w
		}
		if len(tv) > 2 && strings.TrimSpace(tv[2]) != "" {
			spec.name = strings.TrimSpace(tv[2])
		}
		fs = append(fs, spec)
	}
	return fs, nil
}
