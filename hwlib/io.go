// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// Output is a sink that calls a function with the value of its input every
// time one of its bits changes.
//
//	Inputs: in[width]
//	Function: f(in)
//
type Output struct {
	hwbus.Base
	In *hwbus.Signal
	f  func(int64)
}

// NewOutput returns a new output registered with c.
//
func NewOutput(c *hwbus.Circuit, name string, width int, f func(int64)) *Output {
	o := &Output{Base: hwbus.Base(name), f: f}
	o.In = c.NewNotifySignal(o, sIn, width)
	add(c, o)
	return o
}

// Update implements hwbus.Component.
//
func (o *Output) Update(*hwbus.Signal) { o.f(o.In.Value()) }
