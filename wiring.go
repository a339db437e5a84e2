// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseSelect expands a bit selection like "0, 2, 7..4" into a list of bit
// indices. Ranges are inclusive and may be descending.
//
func parseSelect(sel string, width int) ([]int, error) {
	var out []int
	for _, item := range strings.Split(sel, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errors.Wrapf(ErrSyntax, "empty bit index in %q", sel)
		}
		lo, hi := item, item
		if i := strings.Index(item, ".."); i >= 0 {
			lo, hi = strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+2:])
		}
		start, err := bitIndex(lo, width)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", sel)
		}
		end, err := bitIndex(hi, width)
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", sel)
		}
		step := 1
		if end < start {
			step = -1
		}
		for i := start; ; i += step {
			out = append(out, i)
			if i == end {
				break
			}
		}
	}
	if len(out) > MaxWidth {
		return nil, errors.Wrapf(ErrSyntax, "selection %q is too wide", sel)
	}
	return out, nil
}

func bitIndex(s string, width int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "invalid bit index %q", s)
	}
	if n < 0 || n >= width {
		return 0, errors.Wrapf(ErrSyntax, "bit index %d out of range [0, %d)", n, width)
	}
	return n, nil
}

// Lookup returns a view over the signal designated by path. The path syntax
// is:
//
//	component.signal
//	component.signal[selection]
//
// where selection follows the syntax of Signal.Select. Lookup fails if no
// signal or more than one signal matches path.
//
func (c *Circuit) Lookup(path string) (*SignalView, error) {
	path = strings.TrimSpace(path)
	name, sel := path, ""
	if i := strings.IndexByte(path, '['); i >= 0 {
		if !strings.HasSuffix(path, "]") {
			return nil, errors.Wrapf(ErrSyntax, "no terminating ] in %q", path)
		}
		name, sel = strings.TrimSpace(path[:i]), path[i+1:len(path)-1]
		if strings.TrimSpace(sel) == "" {
			return nil, errors.Wrapf(ErrSyntax, "empty selection in %q", path)
		}
	}
	ss := c.names[name]
	switch len(ss) {
	case 0:
		return nil, errors.Wrap(ErrUnknownSignal, name)
	case 1:
	default:
		return nil, errors.Wrapf(ErrUnknownSignal, "%s is ambiguous (%d signals)", name, len(ss))
	}
	if sel == "" {
		return ss[0].View(), nil
	}
	return ss[0].Select(sel)
}

// Wire connects signals by name. Each connection has the form
//
//	"component.signal[selection] = component.signal[selection]"
//
// For example:
//
//	err := c.Wire(
//		"counter.clk = clock.clk[0]",
//		"shuffle.data = counter.out[7..0]",
//	)
//
// See Lookup for the syntax of each side.
//
func (c *Circuit) Wire(conns ...string) error {
	for _, conn := range conns {
		i := strings.IndexByte(conn, '=')
		if i < 0 {
			return errors.Wrapf(ErrSyntax, "missing = in connection %q", conn)
		}
		a, err := c.Lookup(conn[:i])
		if err != nil {
			return errors.Wrap(err, conn)
		}
		b, err := c.Lookup(conn[i+1:])
		if err != nil {
			return errors.Wrap(err, conn)
		}
		if err = a.Connect(b); err != nil {
			return errors.Wrap(err, conn)
		}
	}
	return nil
}
