// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwbus"
	"github.com/pkg/errors"
)

// Rom is a read-only memory.
//
//	Inputs: addr[addrWidth], oe
//	Outputs: data[dataWidth]
//	Function: if oe { data = mem[addr] } else { data = Z }
//
type Rom struct {
	hwbus.Base
	Addr *hwbus.Signal
	Data *hwbus.Signal
	OE   *hwbus.Signal
	mem  []int64
}

// NewRom returns a new ROM registered with c. The ROM contents are zeroed.
// Use Load to set them.
//
func NewRom(c *hwbus.Circuit, name string, addrWidth, dataWidth int) *Rom {
	r := &Rom{Base: hwbus.Base(name), mem: make([]int64, 1<<uint(addrWidth))}
	r.Addr = c.NewNotifySignal(r, sAddr, addrWidth)
	r.Data = c.NewSignal(r, sData, dataWidth)
	r.OE = c.NewNotifySignal(r, sOE, 1)
	add(c, r)
	return r
}

// Load copies data into the ROM, starting at address base.
//
func (r *Rom) Load(base int, data []int64) error {
	return load(r.Name(), r.mem, r.Data.Width(), base, data)
}

// Update implements hwbus.Component.
//
func (r *Rom) Update(*hwbus.Signal) {
	outputEnable(r.Data, r.OE, r.mem[r.Addr.Value()])
}

// Ram is a read-write memory. Writes happen on the rising edge of ie.
//
//	Inputs: addr[addrWidth], ie, oe
//	Inputs/Outputs: data[dataWidth]
//	Function: on ie rising edge, mem[addr] = data
//	          if oe { data = mem[addr] } else { data = Z }
//
type Ram struct {
	hwbus.Base
	Addr *hwbus.Signal
	Data *hwbus.Signal
	IE   *hwbus.Signal
	OE   *hwbus.Signal
	mem  []int64
}

// NewRam returns a new RAM registered with c.
//
func NewRam(c *hwbus.Circuit, name string, addrWidth, dataWidth int) *Ram {
	r := &Ram{Base: hwbus.Base(name), mem: make([]int64, 1<<uint(addrWidth))}
	r.Addr = c.NewNotifySignal(r, sAddr, addrWidth)
	r.Data = c.NewSignal(r, sData, dataWidth)
	r.IE = c.NewNotifySignal(r, sIE, 1)
	r.OE = c.NewNotifySignal(r, sOE, 1)
	add(c, r)
	return r
}

// Update implements hwbus.Component.
//
func (r *Ram) Update(*hwbus.Signal) {
	if r.IE.Rose(0) {
		r.mem[r.Addr.Value()] = r.Data.Value()
	}
	outputEnable(r.Data, r.OE, r.mem[r.Addr.Value()])
}

// Load copies data into the RAM, starting at address base.
//
func (r *Ram) Load(base int, data []int64) error {
	return load(r.Name(), r.mem, r.Data.Width(), base, data)
}

// Peek returns the value stored at address addr. It panics if addr is out of
// range.
//
func (r *Ram) Peek(addr int) int64 { return r.mem[addr] }

// Poke sets the value stored at address addr. It does not drive the data
// signal; the new value shows up on the next update.
//
func (r *Ram) Poke(addr int, v int64) error {
	return load(r.Name(), r.mem, r.Data.Width(), addr, []int64{v})
}

func load(name string, mem []int64, width int, base int, data []int64) error {
	if base < 0 || base+len(data) > len(mem) {
		return errors.Errorf("%s: load of %d words at %d out of range", name, len(data), base)
	}
	m := mask(width)
	for i, v := range data {
		if v < 0 || v > m {
			return errors.Wrapf(hwbus.ErrOverflow, "%s: word %d at %d", name, v, base+i)
		}
	}
	copy(mem[base:], data)
	return nil
}
