// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwbus"
)

// Counter is a rising edge counter.
//
//	Inputs: clk
//	Outputs: out[width]
//	Function: on clk rising edge, out = (out + 1) % 2^width
//
type Counter struct {
	hwbus.Base
	Clk *hwbus.Signal
	Out *hwbus.Signal
	v   int64
}

// NewCounter returns a new counter registered with c.
//
func NewCounter(c *hwbus.Circuit, width int) *Counter {
	cnt := &Counter{Base: "counter"}
	cnt.Clk = c.NewNotifySignal(cnt, sClk, 1)
	cnt.Out = c.NewSignal(cnt, sOut, width)
	add(c, cnt)
	return cnt
}

// Reset implements hwbus.Component.
//
func (cnt *Counter) Reset() {
	cnt.v = 0
	cnt.Out.MustDrive(0)
}

// Update implements hwbus.Component.
//
func (cnt *Counter) Update(*hwbus.Signal) {
	if cnt.Clk.Rose(0) {
		cnt.v = (cnt.v + 1) & mask(cnt.Out.Width())
		cnt.Out.MustDrive(cnt.v)
	}
}

// Value returns the counter value.
//
func (cnt *Counter) Value() int64 { return cnt.v }

// Register is a tri-state register.
//
//	Inputs: ie, oe
//	Inputs/Outputs: data[width]
//	Outputs: state[width]
//	Function: on ie rising edge, v = data
//	          state = v
//	          if oe { data = v } else { data = Z }
//
// Reset clears v but drives nothing: state stays hi-z until the first update.
//
type Register struct {
	hwbus.Base
	Data  *hwbus.Signal
	IE    *hwbus.Signal
	OE    *hwbus.Signal
	State *hwbus.Signal
	v     int64
}

// NewRegister returns a new register registered with c.
//
func NewRegister(c *hwbus.Circuit, name string, width int) *Register {
	r := &Register{Base: hwbus.Base(name)}
	r.Data = c.NewSignal(r, sData, width)
	r.IE = c.NewNotifySignal(r, sIE, 1)
	r.OE = c.NewNotifySignal(r, sOE, 1)
	r.State = c.NewSignal(r, sState, width)
	add(c, r)
	return r
}

// Reset implements hwbus.Component.
//
func (r *Register) Reset() {
	r.v = 0
}

// Update implements hwbus.Component.
//
func (r *Register) Update(*hwbus.Signal) {
	if r.IE.Rose(0) {
		r.v = r.Data.Value()
	}
	r.State.MustDrive(r.v)
	outputEnable(r.Data, r.OE, r.v)
}

// Value returns the register value.
//
func (r *Register) Value() int64 { return r.v }

// SplitRegister is a tri-state register whose ie signal is split into
// several lines, each loading a slice of the register.
//
//	Inputs: ie[width/loadWidth], oe
//	Inputs/Outputs: data[width]
//	Outputs: state[width]
//	Function: on ie[i] rising edge, v[i*lw:(i+1)*lw] = data[i*lw:(i+1)*lw]
//	          state = v
//	          if oe { data = v } else { data = Z }
//
// Like Register, state stays hi-z until the first update.
//
type SplitRegister struct {
	hwbus.Base
	Data  *hwbus.Signal
	IE    *hwbus.Signal
	OE    *hwbus.Signal
	State *hwbus.Signal
	v     int64
}

// NewSplitRegister returns a new split register registered with c.
// loadWidth is clamped to width.
//
func NewSplitRegister(c *hwbus.Circuit, name string, width, loadWidth int) *SplitRegister {
	if loadWidth > width {
		loadWidth = width
	}
	r := &SplitRegister{Base: hwbus.Base(name)}
	r.Data = c.NewSignal(r, sData, width)
	r.IE = c.NewNotifySignal(r, sIE, width/loadWidth)
	r.OE = c.NewNotifySignal(r, sOE, 1)
	r.State = c.NewSignal(r, sState, width)
	add(c, r)
	return r
}

// Reset implements hwbus.Component.
//
func (r *SplitRegister) Reset() {
	r.v = 0
}

// Update implements hwbus.Component.
//
func (r *SplitRegister) Update(*hwbus.Signal) {
	lw := r.Data.Width() / r.IE.Width()
	m := mask(lw)
	for i := 0; i < r.IE.Width(); i++ {
		if r.IE.Rose(i) {
			r.v = r.v&^m | r.Data.Value()&m
		}
		m <<= uint(lw)
	}
	r.State.MustDrive(r.v)
	outputEnable(r.Data, r.OE, r.v)
}

// Value returns the register value.
//
func (r *SplitRegister) Value() int64 { return r.v }
