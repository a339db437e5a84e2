// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	"strconv"
)

// MaxWidth is the maximum width of a signal or signal view.
//
const MaxWidth = 63

// A Signal is a multi-bit bus owned by a component. Bit 0 is the least
// significant bit.
//
type Signal struct {
	c      *Circuit
	owner  Component
	name   string
	pins   []Pin
	full   *SignalView
	notify bool

	// last value driven through the signal. Initially hi-z.
	last  int64
	lastZ bool
}

// NewSignal creates a new signal of the given width, owned by owner.
// Changes received by the signal are not forwarded to its owner.
//
// NewSignal panics if width is not in the range [1, MaxWidth].
//
func (c *Circuit) NewSignal(owner Component, name string, width int) *Signal {
	return c.newSignal(owner, name, width, false)
}

// NewNotifySignal creates a new signal of the given width, owned by owner.
// The owner's Update method is called whenever one of the signal's pins
// receives a change.
//
// NewNotifySignal panics if width is not in the range [1, MaxWidth].
//
func (c *Circuit) NewNotifySignal(owner Component, name string, width int) *Signal {
	return c.newSignal(owner, name, width, true)
}

func (c *Circuit) newSignal(owner Component, name string, width int, notify bool) *Signal {
	if width < 1 || width > MaxWidth {
		panic("invalid width " + strconv.Itoa(width) + " for signal " + name)
	}
	s := &Signal{
		c:      c,
		owner:  owner,
		name:   name,
		pins:   make([]Pin, width),
		notify: notify,
		lastZ:  true,
	}
	for i := range s.pins {
		s.pins[i] = c.allocPin(s, i)
	}
	s.full = &SignalView{sig: s, pins: s.pins}
	c.signals = append(c.signals, s)
	path := owner.Name() + "." + name
	c.names[path] = append(c.names[path], s)
	return s
}

// Signals returns the signals owned by comp, in creation order.
//
func (c *Circuit) Signals(comp Component) []*Signal {
	var out []*Signal
	for _, s := range c.signals {
		if s.owner == comp {
			out = append(out, s)
		}
	}
	return out
}

// Owner returns the component that owns the signal.
//
func (s *Signal) Owner() Component { return s.owner }

// Notifies returns true if changes are forwarded to the signal's owner.
//
func (s *Signal) Notifies() bool { return s.notify }

// Width returns the signal width in bits.
//
func (s *Signal) Width() int { return len(s.pins) }

// Name returns the signal's full name. For single bit signals, this is the
// name of its pin.
//
func (s *Signal) Name() string {
	if len(s.pins) == 1 {
		return s.c.pins[s.pins[0]].fullName()
	}
	return s.owner.Name() + ":" + s.name + "[0.." + strconv.Itoa(len(s.pins)-1) + "]"
}

// Pin returns the handle of pin i.
//
func (s *Signal) Pin(i int) Pin { return s.pins[i] }

// Value returns the signal value.
//
func (s *Signal) Value() int64 { return s.full.Value() }

// Drive drives the signal to value v. Driving the same value as the last one
// driven through this signal is a no-op.
//
func (s *Signal) Drive(v int64) error {
	if !s.lastZ && s.last == v {
		return nil
	}
	if err := s.full.check(v); err != nil {
		return err
	}
	s.last, s.lastZ = v, false
	s.full.drive(v)
	return nil
}

// MustDrive is like Drive but panics on error.
//
func (s *Signal) MustDrive(v int64) {
	if err := s.Drive(v); err != nil {
		panic(err)
	}
}

// HiZ sets all pins in the signal to high impedance. This is a no-op if the
// signal is already hi-z.
//
func (s *Signal) HiZ() {
	if s.lastZ {
		return
	}
	s.lastZ = true
	s.full.HiZ()
}

// Edge reports whether the last transition received by bit i was to level l.
// The pending edge is cleared in either case.
//
func (s *Signal) Edge(i int, l Level) bool {
	return s.c.consumeEdge(s.pins[i], l)
}

// Rose is short for s.Edge(i, High).
//
func (s *Signal) Rose(i int) bool { return s.Edge(i, High) }

// Fell is short for s.Edge(i, Low).
//
func (s *Signal) Fell(i int) bool { return s.Edge(i, Low) }

// View returns a view over all the pins of the signal.
//
func (s *Signal) View() *SignalView { return s.full }

// Bit returns a view over bit i.
//
func (s *Signal) Bit(i int) *SignalView {
	return s.Bits(i)
}

// Bits returns a view over the given bits, in the given order. For example:
//
//	s.Bits(7, 6, 5, 4, 3, 2, 1, 0)
//
// reverses the bit order of an 8 bits signal.
//
// Bits panics if any index is out of range.
//
func (s *Signal) Bits(idx ...int) *SignalView {
	if len(idx) == 0 || len(idx) > MaxWidth {
		panic("invalid view width " + strconv.Itoa(len(idx)) + " for signal " + s.Name())
	}
	pins := make([]Pin, len(idx))
	for i, n := range idx {
		pins[i] = s.pins[n]
	}
	return &SignalView{sig: s, pins: pins}
}

// Slice returns a view over bits [lo, hi).
//
func (s *Signal) Slice(lo, hi int) *SignalView {
	pins := s.pins[lo:hi]
	if len(pins) == 0 {
		panic("empty slice [" + strconv.Itoa(lo) + ":" + strconv.Itoa(hi) + "] of signal " + s.Name())
	}
	return &SignalView{sig: s, pins: pins[:len(pins):len(pins)]}
}

// Select returns a view over the bits selected by sel. sel is a comma
// separated list of bit indices or inclusive ranges:
//
//	s.Select("0..3")        // low nibble
//	s.Select("7..0")        // bit reversal
//	s.Select("0, 2, 4..6")  // bits 0, 2, 4, 5, 6
//
func (s *Signal) Select(sel string) (*SignalView, error) {
	idx, err := parseSelect(sel, len(s.pins))
	if err != nil {
		return nil, err
	}
	return s.Bits(idx...), nil
}

// Connect connects the signal pin by pin to b.
//
func (s *Signal) Connect(b Bus) error {
	return s.full.Connect(b)
}
