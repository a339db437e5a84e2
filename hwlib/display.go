// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"
	"io"

	"github.com/db47h/hwbus"
)

// Display prints the value of its data signal every time it changes.
//
//	Inputs: data[width]
//	Function: print "<name> <data in binary, zero padded to width>"
//
type Display struct {
	hwbus.Base
	Data *hwbus.Signal
	w    io.Writer
	last int64
}

// NewDisplay returns a new display registered with c. Output goes to w.
//
func NewDisplay(c *hwbus.Circuit, name string, width int, w io.Writer) *Display {
	d := &Display{Base: hwbus.Base(name), w: w, last: -1}
	d.Data = c.NewNotifySignal(d, sData, width)
	add(c, d)
	return d
}

// Reset implements hwbus.Component.
//
func (d *Display) Reset() {
	d.last = -1
}

// Update implements hwbus.Component.
//
func (d *Display) Update(*hwbus.Signal) {
	v := d.Data.Value()
	if v == d.last {
		return
	}
	d.last = v
	fmt.Fprintf(d.w, "%s %0*b\n", d.Name(), d.Data.Width(), v)
}
