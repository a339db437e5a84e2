// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hwbus"

// BusConnect is a bidirectional tri-state bridge between two buses.
//
//	Inputs: a_to_b, b_to_a
//	Inputs/Outputs: a[width], b[width]
//	Function: if a_to_b { b = a } else { b = Z }
//	          if b_to_a { a = b } else { a = Z }
//
type BusConnect struct {
	hwbus.Base
	A    *hwbus.Signal
	B    *hwbus.Signal
	AToB *hwbus.Signal
	BToA *hwbus.Signal
}

// NewBusConnect returns a new bus bridge registered with c.
//
func NewBusConnect(c *hwbus.Circuit, name string, width int) *BusConnect {
	bc := &BusConnect{Base: hwbus.Base(name)}
	bc.A = c.NewNotifySignal(bc, "a", width)
	bc.B = c.NewNotifySignal(bc, "b", width)
	bc.AToB = c.NewNotifySignal(bc, "a_to_b", 1)
	bc.BToA = c.NewNotifySignal(bc, "b_to_a", 1)
	add(c, bc)
	return bc
}

// Update implements hwbus.Component.
//
func (bc *BusConnect) Update(*hwbus.Signal) {
	outputEnable(bc.B, bc.AToB, bc.A.Value())
	outputEnable(bc.A, bc.BToA, bc.B.Value())
}
