// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	"strings"

	"github.com/pkg/errors"
)

// A Net is a handle to a set of pins electrically joined together.
//
type Net int

// NoNet is the net of unconnected pins.
//
const NoNet Net = -1

type net struct {
	pins []Pin // in insertion order
	pull Level // Z if none
}

// level returns the net's effective value: the value of the first driving
// pin in insertion order, else the pull value. ok is false for a floating
// net.
//
// Several pins driving the net at once is not detected.
//
func (n *net) level(pins []pin) (v uint8, ok bool) {
	for _, p := range n.pins {
		if !pins[p].hiz {
			return pins[p].value, true
		}
	}
	if n.pull != Z {
		return uint8(n.pull), true
	}
	return 0, false
}

func (c *Circuit) newNet(pins ...Pin) Net {
	n := Net(len(c.nets))
	c.nets = append(c.nets, net{pull: Z})
	for _, p := range pins {
		c.nets[n].pins = append(c.nets[n].pins, p)
		c.pins[p].net = n
	}
	return n
}

func (c *Circuit) netName(n Net) string {
	var b strings.Builder
	for i, p := range c.nets[n].pins {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(c.pins[p].fullName())
	}
	return b.String()
}

// appendPin adds pin p to net n.
//
func (c *Circuit) appendPin(n Net, p Pin) error {
	if c.pins[p].net == n {
		return errors.Wrapf(ErrPinInNet, "pin %q in net %q", c.pins[p].fullName(), c.netName(n))
	}
	c.nets[n].pins = append(c.nets[n].pins, p)
	c.pins[p].net = n
	return nil
}

// merge moves all pins from net o into net n. o is left empty. If n has no
// pull value, it inherits the one from o.
//
func (c *Circuit) merge(n, o Net) error {
	for _, p := range c.nets[o].pins {
		if err := c.appendPin(n, p); err != nil {
			return err
		}
	}
	if c.nets[n].pull == Z {
		c.nets[n].pull = c.nets[o].pull
	}
	c.nets[o] = net{pull: Z}
	return nil
}

// ConnectPins joins pins a and b into the same net, merging existing nets
// if necessary. Connecting two pins that already share a net is an error.
// Connecting pins does not resolve the resulting net.
//
func (c *Circuit) ConnectPins(a, b Pin) error {
	na, nb := c.pins[a].net, c.pins[b].net
	switch {
	case na != NoNet && nb != NoNet:
		return c.merge(na, nb)
	case na != NoNet:
		return c.appendPin(na, b)
	case nb != NoNet:
		return c.appendPin(nb, a)
	case a == b:
		return errors.Wrapf(ErrPinInNet, "pin %q connected to itself", c.pins[a].fullName())
	}
	c.newNet(a, b)
	return nil
}

// Resolve resolves net n: every hi-z pin in the net receives the value of
// the first pin driving the net, or the net's pull value if no pin drives
// it. If neither exists, the net is left untouched.
//
func (c *Circuit) Resolve(n Net) {
	mark := len(c.stack)
	c.resolve(n)
	if c.running {
		c.drain(mark)
		return
	}
	c.run()
}

// resolve schedules the resolution of net n.
//
func (c *Circuit) resolve(n Net) {
	v, ok := c.nets[n].level(c.pins)
	if !ok {
		return
	}
	c.stack = append(c.stack, frame{kind: frameResolve, net: n, v: v})
}

// NetPins returns the pins in net n in insertion order.
//
func (c *Circuit) NetPins(n Net) []Pin {
	return append([]Pin(nil), c.nets[n].pins...)
}

// SetPull sets the pull value of net n. Use Z to remove it. The net is
// resolved afterwards.
//
func (c *Circuit) SetPull(n Net, l Level) {
	c.nets[n].pull = l
	c.Resolve(n)
}

// Pull returns the pull value of net n, Z if none.
//
func (c *Circuit) Pull(n Net) Level {
	return c.nets[n].pull
}
