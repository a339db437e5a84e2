// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// Clock is a free running counter driven by calls to Tick.
//
//	Outputs: clk[width]
//	Function: clk = ticks % 2^width
//
type Clock struct {
	hwbus.Base
	Clk *hwbus.Signal
	v   int64
}

// NewClock returns a new clock of the given width, registered with c.
//
func NewClock(c *hwbus.Circuit, width int) *Clock {
	clk := &Clock{Base: "clock"}
	clk.Clk = c.NewSignal(clk, sClk, width)
	add(c, clk)
	return clk
}

// Tick advances the clock by one step and propagates the new value.
//
func (clk *Clock) Tick() {
	clk.v = (clk.v + 1) & mask(clk.Clk.Width())
	clk.Clk.MustDrive(clk.v)
}

// Value returns the current clock value.
//
func (clk *Clock) Value() int64 { return clk.v }

// Reset implements hwbus.Component.
//
func (clk *Clock) Reset() {
	clk.v = 0
	clk.Clk.MustDrive(0)
}

// Power provides constant low and high rails.
//
//	Outputs: low, high
//	Function: low = 0, high = 1
//
type Power struct {
	hwbus.Base
	Low  *hwbus.Signal
	High *hwbus.Signal
}

// NewPower returns a new power supply registered with c.
//
func NewPower(c *hwbus.Circuit) *Power {
	p := &Power{Base: "power"}
	p.Low = c.NewSignal(p, "low", 1)
	p.High = c.NewSignal(p, "high", 1)
	add(c, p)
	return p
}

// Reset implements hwbus.Component.
//
func (p *Power) Reset() {
	p.Low.MustDrive(0)
	p.High.MustDrive(1)
}
