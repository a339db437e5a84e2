// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import "strconv"

// A Level is the state a pin outputs: Low, High or Z (high impedance).
//
type Level int8

// Pin levels.
//
const (
	Z    Level = -1
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	switch l {
	case Low:
		return "0"
	case High:
		return "1"
	case Z:
		return "Z"
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// A Pin is a handle to a single bit terminal in a Circuit.
//
type Pin int

const noEdge = -1

type pin struct {
	sig   *Signal
	bit   int
	value uint8
	hiz   bool
	edge  int8 // value of the last received transition or noEdge
	net   Net
}

func (p *pin) name() string {
	return p.sig.name + "_" + strconv.Itoa(p.bit)
}

func (p *pin) fullName() string {
	return p.sig.owner.Name() + ":" + p.name()
}

// allocPin allocates a pin and returns its handle. New pins are hi-z, read
// as 0 and are not part of any net.
//
func (c *Circuit) allocPin(s *Signal, bit int) Pin {
	n := Pin(len(c.pins))
	c.pins = append(c.pins, pin{sig: s, bit: bit, hiz: true, edge: noEdge, net: NoNet})
	return n
}

// applyDrive sets the pin's own output. It is a no-op if the pin already outputs
// l; otherwise the pin's net, if any, is resolved.
//
func (c *Circuit) applyDrive(n Pin, l Level) {
	p := &c.pins[n]
	if l == Z {
		if p.hiz {
			return
		}
		p.hiz = true
	} else {
		if !p.hiz && p.value == uint8(l) {
			return
		}
		p.value = uint8(l)
		p.hiz = false
	}
	if p.net != NoNet {
		c.resolve(p.net)
	}
}

// receive is called by net resolution on hi-z pins only.
//
func (c *Circuit) receive(n Pin, v uint8) {
	p := &c.pins[n]
	if !p.hiz || p.value == v {
		return
	}
	p.edge = int8(v)
	p.value = v
	if s := p.sig; s.notify {
		c.notify(s)
	}
}

func (c *Circuit) consumeEdge(n Pin, l Level) bool {
	p := &c.pins[n]
	r := p.edge != noEdge && p.edge == int8(l)
	p.edge = noEdge
	return r
}

// DrivePin drives a single pin to the given level and propagates the change.
//
func (c *Circuit) DrivePin(p Pin, l Level) {
	c.drive(p, l)
}

// ConsumeEdge reports whether the last transition received by pin p was to
// level l. The pending edge is cleared in either case.
//
func (c *Circuit) ConsumeEdge(p Pin, l Level) bool {
	return c.consumeEdge(p, l)
}

// PinValue returns the current value (0 or 1) of pin p.
//
func (c *Circuit) PinValue(p Pin) int {
	return int(c.pins[p].value)
}

// PinHiZ returns true if pin p is not driving its net.
//
func (c *Circuit) PinHiZ(p Pin) bool {
	return c.pins[p].hiz
}

// PinNet returns the net pin p belongs to, or NoNet.
//
func (c *Circuit) PinNet(p Pin) Net {
	return c.pins[p].net
}

// PinName returns the full name of pin p: component:signal_bit.
//
func (c *Circuit) PinName(p Pin) string {
	return c.pins[p].fullName()
}
