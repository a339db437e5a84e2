// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// DFF is a clocked data flip flop.
//
//	Inputs: clk, in[width]
//	Outputs: out[width]
//	Function: on clk rising edge, out = in
//
type DFF struct {
	hwbus.Base
	Clk *hwbus.Signal
	In  *hwbus.Signal
	Out *hwbus.Signal
}

// NewDFF returns a new flip flop registered with c.
//
func NewDFF(c *hwbus.Circuit, name string, width int) *DFF {
	d := &DFF{Base: hwbus.Base(name)}
	d.Clk = c.NewNotifySignal(d, sClk, 1)
	d.In = c.NewSignal(d, sIn, width)
	d.Out = c.NewSignal(d, sOut, width)
	add(c, d)
	return d
}

// Reset implements hwbus.Component.
//
func (d *DFF) Reset() { d.Out.MustDrive(0) }

// Update implements hwbus.Component.
//
func (d *DFF) Update(*hwbus.Signal) {
	// raising edge?
	if d.Clk.Rose(0) {
		d.Out.MustDrive(d.In.Value())
	}
}
