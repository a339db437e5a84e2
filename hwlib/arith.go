// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// Adder is a N bits adder with carry in and carry out.
//
//	Inputs: a[width], b[width], cin
//	Outputs: out[width], cout
//	Function: out = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
type Adder struct {
	hwbus.Base
	A    *hwbus.Signal
	B    *hwbus.Signal
	Cin  *hwbus.Signal
	Out  *hwbus.Signal
	Cout *hwbus.Signal
}

// NewAdder returns a new adder registered with c.
//
func NewAdder(c *hwbus.Circuit, name string, width int) *Adder {
	a := &Adder{Base: hwbus.Base(name)}
	a.A = c.NewNotifySignal(a, sA, width)
	a.B = c.NewNotifySignal(a, sB, width)
	a.Cin = c.NewNotifySignal(a, "cin", 1)
	a.Out = c.NewSignal(a, sOut, width)
	a.Cout = c.NewSignal(a, "cout", 1)
	add(c, a)
	return a
}

// Reset implements hwbus.Component.
//
func (a *Adder) Reset() { a.Update(nil) }

// Update implements hwbus.Component.
//
func (a *Adder) Update(*hwbus.Signal) {
	w := uint(a.Out.Width())
	// a and b are at most 63 bits wide: the sum fits in an uint64.
	sum := uint64(a.A.Value()) + uint64(a.B.Value()) + uint64(a.Cin.Value())
	a.Out.MustDrive(int64(sum & (1<<w - 1)))
	a.Cout.MustDrive(int64(sum >> w & 1))
}
