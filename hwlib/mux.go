// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// Mux is a multiplexer.
//
//	Inputs: a[width], b[width], sel
//	Outputs: out[width]
//	Function: if sel == 0 { out = a } else { out = b }
//
type Mux struct {
	hwbus.Base
	A   *hwbus.Signal
	B   *hwbus.Signal
	Sel *hwbus.Signal
	Out *hwbus.Signal
}

// NewMux returns a new multiplexer registered with c.
//
func NewMux(c *hwbus.Circuit, name string, width int) *Mux {
	m := &Mux{Base: hwbus.Base(name)}
	m.A = c.NewNotifySignal(m, sA, width)
	m.B = c.NewNotifySignal(m, sB, width)
	m.Sel = c.NewNotifySignal(m, sSel, 1)
	m.Out = c.NewSignal(m, sOut, width)
	add(c, m)
	return m
}

// Reset implements hwbus.Component.
//
func (m *Mux) Reset() { m.Update(nil) }

// Update implements hwbus.Component.
//
func (m *Mux) Update(*hwbus.Signal) {
	if m.Sel.Value() != 0 {
		m.Out.MustDrive(m.B.Value())
	} else {
		m.Out.MustDrive(m.A.Value())
	}
}

// DMux is a demultiplexer.
//
//	Inputs: in[width], sel
//	Outputs: a[width], b[width]
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
type DMux struct {
	hwbus.Base
	In  *hwbus.Signal
	Sel *hwbus.Signal
	A   *hwbus.Signal
	B   *hwbus.Signal
}

// NewDMux returns a new demultiplexer registered with c.
//
func NewDMux(c *hwbus.Circuit, name string, width int) *DMux {
	m := &DMux{Base: hwbus.Base(name)}
	m.In = c.NewNotifySignal(m, sIn, width)
	m.Sel = c.NewNotifySignal(m, sSel, 1)
	m.A = c.NewSignal(m, sA, width)
	m.B = c.NewSignal(m, sB, width)
	add(c, m)
	return m
}

// Reset implements hwbus.Component.
//
func (m *DMux) Reset() { m.Update(nil) }

// Update implements hwbus.Component.
//
func (m *DMux) Update(*hwbus.Signal) {
	if m.Sel.Value() != 0 {
		m.A.MustDrive(0)
		m.B.MustDrive(m.In.Value())
	} else {
		m.A.MustDrive(m.In.Value())
		m.B.MustDrive(0)
	}
}
