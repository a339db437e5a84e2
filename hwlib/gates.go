// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// Not is a bitwise NOT gate.
//
//	Inputs: in[width]
//	Outputs: out[width]
//	Function: out = !in
//
type Not struct {
	hwbus.Base
	In  *hwbus.Signal
	Out *hwbus.Signal
}

// NewNot returns a new NOT gate registered with c.
//
func NewNot(c *hwbus.Circuit, name string, width int) *Not {
	g := &Not{Base: hwbus.Base(name)}
	g.In = c.NewNotifySignal(g, sIn, width)
	g.Out = c.NewSignal(g, sOut, width)
	add(c, g)
	return g
}

// Reset implements hwbus.Component.
//
func (g *Not) Reset() { g.Update(nil) }

// Update implements hwbus.Component.
//
func (g *Not) Update(*hwbus.Signal) {
	g.Out.MustDrive(^g.In.Value() & mask(g.In.Width()))
}

// Gate is a bitwise two input gate.
//
//	Inputs: a[width], b[width]
//	Outputs: out[width]
//	Function: out = fn(a, b)
//
type Gate struct {
	hwbus.Base
	A   *hwbus.Signal
	B   *hwbus.Signal
	Out *hwbus.Signal
	fn  func(a, b int64) int64
}

func newGate(c *hwbus.Circuit, name string, width int, fn func(a, b int64) int64) *Gate {
	g := &Gate{Base: hwbus.Base(name), fn: fn}
	g.A = c.NewNotifySignal(g, sA, width)
	g.B = c.NewNotifySignal(g, sB, width)
	g.Out = c.NewSignal(g, sOut, width)
	add(c, g)
	return g
}

// Reset implements hwbus.Component. Outputs are set from the current inputs.
//
func (g *Gate) Reset() { g.Update(nil) }

// Update implements hwbus.Component.
//
func (g *Gate) Update(*hwbus.Signal) {
	g.Out.MustDrive(g.fn(g.A.Value(), g.B.Value()) & mask(g.Out.Width()))
}

// NewAnd returns a AND gate.
//
//	Function: out = a & b
//
func NewAnd(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return a & b })
}

// NewNand returns a NAND gate.
//
//	Function: out = !(a & b)
//
func NewNand(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return ^(a & b) })
}

// NewOr returns a OR gate.
//
//	Function: out = a | b
//
func NewOr(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return a | b })
}

// NewNor returns a NOR gate.
//
//	Function: out = !(a | b)
//
func NewNor(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return ^(a | b) })
}

// NewXor returns a XOR gate.
//
//	Function: out = a ^ b
//
func NewXor(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return a ^ b })
}

// NewXnor returns a XNOR gate.
//
//	Function: out = !(a ^ b)
//
func NewXnor(c *hwbus.Circuit, name string, width int) *Gate {
	return newGate(c, name, width, func(a, b int64) int64 { return ^(a ^ b) })
}
