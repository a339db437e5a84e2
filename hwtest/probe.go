// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility components for testing circuits.
//
package hwtest

import (
	"strings"

	"github.com/db47h/hwbus"
)

// Probe records every change seen on its input signal.
//
//	Inputs: in[width]
//
type Probe struct {
	hwbus.Base
	In *hwbus.Signal
	// Values holds the value of In after each update.
	Values []int64
}

// NewProbe returns a new probe registered with c.
//
func NewProbe(c *hwbus.Circuit, name string, width int) *Probe {
	p := &Probe{Base: hwbus.Base(name)}
	p.In = c.NewNotifySignal(p, "in", width)
	if err := c.Add(p); err != nil {
		panic(err)
	}
	return p
}

// Update implements hwbus.Component.
//
func (p *Probe) Update(*hwbus.Signal) {
	p.Values = append(p.Values, p.In.Value())
}

// Reset implements hwbus.Component.
//
func (p *Probe) Reset() { p.Values = nil }

// Updates returns the number of times Update has been called since the last
// reset.
//
func (p *Probe) Updates() int { return len(p.Values) }

// Last returns the last recorded value, or -1 if none.
//
func (p *Probe) Last() int64 {
	if len(p.Values) == 0 {
		return -1
	}
	return p.Values[len(p.Values)-1]
}

// Source is a component with a single output signal, driven by test code.
//
//	Outputs: out[width]
//
type Source struct {
	hwbus.Base
	Out *hwbus.Signal
}

// NewSource returns a new source registered with c.
//
func NewSource(c *hwbus.Circuit, name string, width int) *Source {
	s := &Source{Base: hwbus.Base(name)}
	s.Out = c.NewSignal(s, "out", width)
	if err := c.Add(s); err != nil {
		panic(err)
	}
	return s
}

// Lines is an io.Writer that collects lines of text.
//
type Lines struct {
	b strings.Builder
}

// Write implements io.Writer.
//
func (l *Lines) Write(p []byte) (int, error) {
	return l.b.Write(p)
}

// Lines returns the complete lines written so far.
//
func (l *Lines) Lines() []string {
	s := l.b.String()
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.Split(s[:i], "\n")
	}
	return nil
}

// Reset discards all collected lines.
//
func (l *Lines) Reset() { l.b.Reset() }
