// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	"strings"

	"github.com/pkg/errors"
)

// A Bus is anything that can be projected onto a SignalView.
//
type Bus interface {
	View() *SignalView
}

// A SignalView is an ordered selection of pins from a signal. Views do not
// own pins: they are used to slice, reorder, drive or connect the pins of a
// signal.
//
// Unlike Signal.Drive, SignalView.Drive does not skip repeated values.
//
type SignalView struct {
	sig  *Signal
	pins []Pin
}

// View returns v.
//
func (v *SignalView) View() *SignalView { return v }

// Signal returns the signal the view was taken from.
//
func (v *SignalView) Signal() *Signal { return v.sig }

// Width returns the number of pins in the view.
//
func (v *SignalView) Width() int { return len(v.pins) }

// Pins returns the pins in the view.
//
func (v *SignalView) Pins() []Pin { return append([]Pin(nil), v.pins...) }

// Name returns the name of the view. This is the signal name for full views.
//
func (v *SignalView) Name() string {
	if v == v.sig.full {
		return v.sig.Name()
	}
	var b strings.Builder
	b.WriteString(v.sig.owner.Name())
	b.WriteByte(':')
	for i, p := range v.pins {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.sig.c.pins[p].name())
	}
	return b.String()
}

// Value returns the value of the view. The first pin in the view is bit 0.
//
func (v *SignalView) Value() int64 {
	var out int64
	for bit, p := range v.pins {
		out |= int64(v.sig.c.pins[p].value) << uint(bit)
	}
	return out
}

func (v *SignalView) check(x int64) error {
	if x < 0 {
		return errors.Wrapf(ErrUnderflow, "drive %s with %d", v.Name(), x)
	}
	if uint64(x) >= 1<<uint(len(v.pins)) {
		return errors.Wrapf(ErrOverflow, "drive %s with %d", v.Name(), x)
	}
	return nil
}

func (v *SignalView) drive(x int64) {
	c := v.sig.c
	for _, p := range v.pins {
		c.drive(p, Level(x&1))
		x >>= 1
	}
}

// Drive drives the pins in the view to value x.
//
func (v *SignalView) Drive(x int64) error {
	if err := v.check(x); err != nil {
		return err
	}
	v.drive(x)
	return nil
}

// HiZ sets all pins in the view to high impedance.
//
func (v *SignalView) HiZ() {
	c := v.sig.c
	for _, p := range v.pins {
		c.drive(p, Z)
	}
}

// Pull sets a static pull value on the nets of the pins in the view. A pin
// with no net gets a net of its own. Nets are resolved once the pull value is
// set.
//
func (v *SignalView) Pull(x int64) error {
	if err := v.check(x); err != nil {
		return err
	}
	c := v.sig.c
	for _, p := range v.pins {
		n := c.pins[p].net
		if n == NoNet {
			n = c.newNet(p)
		}
		c.SetPull(n, Level(x&1))
		x >>= 1
	}
	return nil
}

// Connect wires each pin in the view to the pin at the same position in b.
// Both must have the same width. Connecting does not propagate values.
//
func (v *SignalView) Connect(b Bus) error {
	o := b.View()
	if len(v.pins) != len(o.pins) {
		return errors.Wrapf(ErrWidthMismatch, "%s and %s", v.Name(), o.Name())
	}
	c := v.sig.c
	if o.sig.c != c {
		return errors.Errorf("%s and %s belong to different circuits", v.Name(), o.Name())
	}
	for i, p := range v.pins {
		if err := c.ConnectPins(p, o.pins[i]); err != nil {
			return errors.Wrapf(err, "connect %s to %s", v.Name(), o.Name())
		}
	}
	return nil
}
