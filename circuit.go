// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

type frameKind uint8

const (
	frameDrive frameKind = iota
	frameResolve
)

// A frame is a pending propagation step.
//
//	frameDrive: set pin to level.
//	frameResolve: push v into the hi-z pins of net, starting at index next.
//
type frame struct {
	kind  frameKind
	pin   Pin
	level Level
	net   Net
	v     uint8
	next  int
}

// Circuit holds the pins, nets, signals and components of a simulation.
//
// Propagation is synchronous and zero delay: a call that drives a pin returns
// once every component affected by the change has been updated, and every
// value they drove in turn has settled. Net resolution steps are kept on an
// explicit stack: the call stack only grows when a component drives a signal
// from its Update method.
//
// A Circuit is not safe for concurrent use.
//
type Circuit struct {
	pins    []pin
	nets    []net
	signals []*Signal
	comps   []Component
	reg     mapset.Set[Component]
	names   map[string][]*Signal

	stack   []frame
	running bool
}

// NewCircuit returns a new empty circuit.
//
func NewCircuit() *Circuit {
	return &Circuit{
		reg:   mapset.NewThreadUnsafeSet[Component](),
		names: make(map[string][]*Signal),
	}
}

// Add registers components with the circuit. Components are reset in the
// order they were added.
//
func (c *Circuit) Add(cs ...Component) error {
	for _, comp := range cs {
		if c.reg.Contains(comp) {
			return errors.Wrap(ErrDuplicate, comp.Name())
		}
		c.reg.Add(comp)
		c.comps = append(c.comps, comp)
	}
	return nil
}

// Components returns the registered components.
//
func (c *Circuit) Components() []Component {
	return append([]Component(nil), c.comps...)
}

// Reset calls Reset on all registered components.
//
func (c *Circuit) Reset() {
	for _, comp := range c.comps {
		comp.Reset()
	}
}

// drive drives pin p to level l and propagates the change before returning.
// When called from within propagation, typically from a component's Update
// method, only the frames pushed by this drive are run, so that the caller
// sees a settled circuit while the interrupted net resolution is resumed
// later.
//
func (c *Circuit) drive(p Pin, l Level) {
	mark := len(c.stack)
	c.stack = append(c.stack, frame{kind: frameDrive, pin: p, level: l})
	if c.running {
		c.drain(mark)
		return
	}
	c.run()
}

// notify calls the update method of the signal's owner.
//
func (c *Circuit) notify(s *Signal) {
	s.owner.Update(s)
}

func (c *Circuit) run() {
	c.running = true
	defer func() {
		c.running = false
		c.stack = c.stack[:0]
	}()
	c.drain(0)
}

// drain runs frames until the stack shrinks back to mark.
//
func (c *Circuit) drain(mark int) {
	for len(c.stack) > mark {
		top := len(c.stack) - 1
		f := &c.stack[top]
		switch f.kind {
		case frameDrive:
			p, l := f.pin, f.level
			c.stack = c.stack[:top]
			c.applyDrive(p, l)
		case frameResolve:
			pins := c.nets[f.net].pins
			if f.next >= len(pins) {
				c.stack = c.stack[:top]
				continue
			}
			p := pins[f.next]
			f.next++
			// f is invalid past this point: receive may grow the stack.
			c.receive(p, f.v)
		}
	}
}

// Stats holds circuit statistics.
//
type Stats struct {
	Pins       int
	Nets       int // nets with at least one pin
	Signals    int
	Components int
}

// Stats returns statistics about the circuit.
//
func (c *Circuit) Stats() Stats {
	st := Stats{
		Pins:       len(c.pins),
		Signals:    len(c.signals),
		Components: len(c.comps),
	}
	for i := range c.nets {
		if len(c.nets[i].pins) > 0 {
			st.Nets++
		}
	}
	return st
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.comps) }
