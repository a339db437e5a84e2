// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus

// A Component is a named hardware block owning one or more signals.
//
// Reset is called once before the simulation starts. It sets up the internal
// state of the component and drives the initial value of its outputs.
//
// Update is called whenever one of the component's notifying signals
// receives a change from its nets. It runs synchronously from within the
// propagation of that change. Typical implementations check edges on clock or
// enable lines, update their internal state and drive their outputs. A drive
// issued from Update is fully propagated before it returns: reading any
// signal afterwards sees the settled values.
//
type Component interface {
	Name() string
	Reset()
	Update(changed *Signal)
}

// Base provides a name and no-op Reset and Update methods. It is meant to be
// embedded in custom components:
//
//	type Led struct {
//		hwbus.Base
//		In *hwbus.Signal
//	}
//
//	func NewLed(c *hwbus.Circuit, name string) *Led {
//		l := &Led{Base: hwbus.Base(name)}
//		l.In = c.NewNotifySignal(l, "in", 1)
//		return l
//	}
//
type Base string

// Name returns the component name.
//
func (b Base) Name() string { return string(b) }

// Reset does nothing.
//
func (Base) Reset() {}

// Update does nothing.
//
func (Base) Update(*Signal) {}
