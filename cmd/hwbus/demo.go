// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"strconv"

	"github.com/db47h/hwbus"
	"github.com/db47h/hwbus/hwlib"
	"github.com/pkg/errors"
)

type demo struct {
	c   *hwbus.Circuit
	clk *hwlib.Clock
	cnt *hwlib.Counter
	reg *hwlib.Register
}

// build wires the demo circuit. Display output goes to w.
//
func build(w io.Writer, width int) (*demo, error) {
	if width < 4 || width > hwbus.MaxWidth {
		return nil, errors.Errorf("invalid counter width %d", width)
	}
	c := hwbus.NewCircuit()
	d := &demo{
		c:   c,
		clk: hwlib.NewClock(c, 1),
		cnt: hwlib.NewCounter(c, width),
	}
	hwlib.NewDisplay(c, "counter", width, w)
	hwlib.NewDisplay(c, "shuffle", width, w)
	d.reg = hwlib.NewRegister(c, "a", 4)

	err := c.Wire(
		"counter.clk = clock.clk[0]",
		"counter.data = counter.out",
		"shuffle.data = counter.out["+strconv.Itoa(width-1)+"..0]",
		"a.data = counter.out[0..3]",
		"a.ie = counter.out[0]",
	)
	if err != nil {
		return nil, errors.Wrap(err, "wire demo circuit")
	}
	return d, nil
}
