// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"strconv"
	"testing"

	hw "github.com/db47h/hwbus"
	hl "github.com/db47h/hwbus/hwlib"
	"github.com/db47h/hwbus/hwtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNot(t *testing.T) {
	c := hw.NewCircuit()
	src := hwtest.NewSource(c, "src", 8)
	g := hl.NewNot(c, "not", 8)
	require.NoError(t, g.In.Connect(src.Out))
	c.Reset()
	hwtest.Sweep(t, src.Out, g.Out, func(v int64) int64 { return ^v & 0xff })
}

func TestGates(t *testing.T) {
	td := []struct {
		name string
		new  func(c *hw.Circuit, name string, width int) *hl.Gate
		f    func(a, b int64) int64
	}{
		{"and", hl.NewAnd, func(a, b int64) int64 { return a & b }},
		{"nand", hl.NewNand, func(a, b int64) int64 { return ^(a & b) & 0xf }},
		{"or", hl.NewOr, func(a, b int64) int64 { return a | b }},
		{"nor", hl.NewNor, func(a, b int64) int64 { return ^(a | b) & 0xf }},
		{"xor", hl.NewXor, func(a, b int64) int64 { return a ^ b }},
		{"xnor", hl.NewXnor, func(a, b int64) int64 { return ^(a ^ b) & 0xf }},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c := hw.NewCircuit()
			src := hwtest.NewSource(c, "src", 8)
			g := d.new(c, "g", 4)
			require.NoError(t, c.Wire("g.a = src.out[0..3]", "g.b = src.out[4..7]"))
			c.Reset()
			hwtest.Sweep(t, src.Out, g.Out, func(v int64) int64 { return d.f(v&0xf, v>>4) })
		})
	}
}

func TestMux(t *testing.T) {
	c := hw.NewCircuit()
	src := hwtest.NewSource(c, "src", 9)
	m := hl.NewMux(c, "mux", 4)
	require.NoError(t, c.Wire("mux.a = src.out[0..3]", "mux.b = src.out[4..7]", "mux.sel = src.out[8]"))
	c.Reset()
	hwtest.Sweep(t, src.Out, m.Out, func(v int64) int64 {
		if v>>8 != 0 {
			return v >> 4 & 0xf
		}
		return v & 0xf
	})
}

func TestDMux(t *testing.T) {
	c := hw.NewCircuit()
	src := hwtest.NewSource(c, "src", 5)
	hl.NewDMux(c, "dmux", 4)
	p := hwtest.NewProbe(c, "p", 8)
	require.NoError(t, c.Wire(
		"dmux.in = src.out[0..3]",
		"dmux.sel = src.out[4]",
		"p.in[0..3] = dmux.a",
		"p.in[4..7] = dmux.b",
	))
	c.Reset()
	hwtest.Sweep(t, src.Out, p.In, func(v int64) int64 {
		if v>>4 != 0 {
			return (v & 0xf) << 4
		}
		return v
	})
}

func TestAdder(t *testing.T) {
	for _, w := range []int{4, 20} {
		c := hw.NewCircuit()
		src := hwtest.NewSource(c, "src", 2*w+1)
		hl.NewAdder(c, "add", w)
		sum := hwtest.NewProbe(c, "sum", w+1)
		lo, hi := "[0.."+strconv.Itoa(w-1)+"]", "["+strconv.Itoa(w)+".."+strconv.Itoa(2*w-1)+"]"
		require.NoError(t, c.Wire(
			"add.a = src.out"+lo,
			"add.b = src.out"+hi,
			"add.cin = src.out["+strconv.Itoa(2*w)+"]",
			"sum.in"+lo+" = add.out",
			"sum.in["+strconv.Itoa(w)+"] = add.cout",
		))
		c.Reset()
		m := int64(1)<<uint(w) - 1
		hwtest.Sweep(t, src.Out, sum.In, func(v int64) int64 {
			return v&m + v>>uint(w)&m + v>>uint(2*w)
		})
	}
}

func TestDFF(t *testing.T) {
	c := hw.NewCircuit()
	clk := hwtest.NewSource(c, "clk", 1)
	in := hwtest.NewSource(c, "in", 4)
	d := hl.NewDFF(c, "dff", 4)
	require.NoError(t, c.Wire("dff.clk = clk.out", "dff.in = in.out"))
	c.Reset()
	require.NoError(t, clk.Out.Drive(0))

	require.NoError(t, in.Out.Drive(5))
	assert.Equal(t, int64(0), d.Out.Value())
	require.NoError(t, clk.Out.Drive(1))
	assert.Equal(t, int64(5), d.Out.Value())
	require.NoError(t, in.Out.Drive(7))
	require.NoError(t, clk.Out.Drive(0))
	assert.Equal(t, int64(5), d.Out.Value())
	require.NoError(t, clk.Out.Drive(1))
	assert.Equal(t, int64(7), d.Out.Value())
}

func TestOutput(t *testing.T) {
	var got []int64
	c := hw.NewCircuit()
	src := hwtest.NewSource(c, "src", 2)
	o := hl.NewOutput(c, "out", 2, func(v int64) { got = append(got, v) })
	require.NoError(t, o.In.Connect(src.Out))

	require.NoError(t, src.Out.Drive(3))
	require.NoError(t, src.Out.Drive(2))
	assert.Equal(t, []int64{1, 3, 2}, got)
}
