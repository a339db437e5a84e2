// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable components for hwbus.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"github.com/db47h/hwbus"
)

// common signal names
const (
	sClk   = "clk"
	sOut   = "out"
	sData  = "data"
	sState = "state"
	sIE    = "ie"
	sOE    = "oe"
	sAddr  = "addr"
	sIn    = "in"
	sA     = "a"
	sB     = "b"
	sSel   = "sel"
)

// add registers comp with c. This cannot fail for freshly allocated
// components.
//
func add(c *hwbus.Circuit, comp hwbus.Component) {
	if err := c.Add(comp); err != nil {
		panic(err)
	}
}

func mask(width int) int64 {
	return 1<<uint(width) - 1
}

// outputEnable drives s with v if oe is high, and sets it to hi-z
// otherwise.
//
func outputEnable(s *hwbus.Signal, oe *hwbus.Signal, v int64) {
	if oe.Value() != 0 {
		s.MustDrive(v)
	} else {
		s.HiZ()
	}
}
