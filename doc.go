/*
Package hwbus provides a naive, zero delay digital logic simulator built
around tri-state buses.

Components own signals (multi-bit buses made of pins). Pins are joined into
nets by connecting signals, or views of signals, together:

	c := hwbus.NewCircuit()
	clk := hwlib.NewClock(c, 1)
	cnt := hwlib.NewCounter(c, 8)
	err := cnt.Clk.Connect(clk.Clk.Bit(0))

Each pin either drives its net with a 0 or 1, or is in high impedance state
(hi-z). Whenever a pin changes, its net is resolved: the first driving pin in
the net (in connection order) sets the value of every hi-z pin in the net.
When no pin drives the net, a pull value, if set, is used instead. Otherwise
the net floats and keeps its value.

Several pins driving the same net is neither detected nor reported.

Changes are propagated synchronously: driving a signal returns once every
component affected by the change has been notified through its Update method,
and every value it drove in turn has been propagated.

Edges are recorded per pin and read once with Signal.Edge, Signal.Rose or
Signal.Fell.
*/
package hwbus
