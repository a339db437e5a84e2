// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus_test

import (
	"testing"

	hw "github.com/db47h/hwbus"
	"github.com/db47h/hwbus/hwtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_value(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 8)

	require.NoError(t, s.Out.Drive(0xb0))
	assert.Equal(t, int64(176), s.Out.Value())

	rev := s.Out.Bits(7, 6, 5, 4, 3, 2, 1, 0)
	assert.Equal(t, int64(13), rev.Value())
	sel, err := s.Out.Select("7..0")
	require.NoError(t, err)
	assert.Equal(t, int64(13), sel.Value())

	assert.Equal(t, int64(0), s.Out.Slice(0, 4).Value())
	assert.Equal(t, int64(0xb), s.Out.Slice(4, 8).Value())
	assert.Equal(t, int64(1), s.Out.Bit(7).Value())
	assert.Equal(t, 4, s.Out.Slice(4, 8).Width())
}

func TestSignal_names(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 8)
	b := hwtest.NewSource(c, "bit", 1)

	assert.Equal(t, "src:out[0..7]", s.Out.Name())
	assert.Equal(t, "src:out[0..7]", s.Out.View().Name())
	assert.Equal(t, "src:out_1,out_0", s.Out.Bits(1, 0).Name())
	assert.Equal(t, "bit:out_0", b.Out.Name())
}

func TestSignal_bounds(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 4)

	require.NoError(t, s.Out.Drive(5))
	err := s.Out.Drive(16)
	assert.Equal(t, hw.ErrOverflow, errors.Cause(err))
	err = s.Out.Drive(-1)
	assert.Equal(t, hw.ErrUnderflow, errors.Cause(err))
	assert.Equal(t, int64(5), s.Out.Value())
	require.NoError(t, s.Out.Drive(15))

	err = s.Out.Slice(0, 2).Drive(4)
	assert.Equal(t, hw.ErrOverflow, errors.Cause(err))
	assert.Panics(t, func() { s.Out.MustDrive(16) })

	wide := hwtest.NewSource(c, "wide", hw.MaxWidth)
	require.NoError(t, wide.Out.Drive(1<<62))
	assert.Equal(t, int64(1<<62), wide.Out.Value())
	assert.Panics(t, func() { c.NewSignal(wide, "bad", hw.MaxWidth+1) })
	assert.Panics(t, func() { c.NewSignal(wide, "bad", 0) })
}

func TestSignal_dedup(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 4)
	p := hwtest.NewProbe(c, "probe", 4)
	require.NoError(t, p.In.Connect(s.Out))

	require.NoError(t, s.Out.Drive(5))
	// bits 0 and 2 changed.
	assert.Equal(t, []int64{1, 5}, p.Values)
	require.NoError(t, s.Out.Drive(5))
	assert.Equal(t, 2, p.Updates())

	// the cache only knows about values driven through the signal.
	s.Out.View().HiZ()
	require.NoError(t, s.Out.Drive(5))
	for i := 0; i < 4; i++ {
		assert.True(t, c.PinHiZ(s.Out.Pin(i)))
	}
	s.Out.HiZ()
	require.NoError(t, s.Out.Drive(5))
	assert.False(t, c.PinHiZ(s.Out.Pin(0)))
	assert.Equal(t, 2, p.Updates())
}

func TestSignal_hiz(t *testing.T) {
	c := hw.NewCircuit()
	a := hwtest.NewSource(c, "a", 4)
	b := hwtest.NewSource(c, "b", 4)
	require.NoError(t, a.Out.Connect(b.Out))

	// fresh signals are hi-z.
	a.Out.HiZ()
	assert.True(t, c.PinHiZ(a.Out.Pin(0)))

	require.NoError(t, a.Out.Drive(9))
	assert.Equal(t, int64(9), b.Out.Value())
	a.Out.HiZ()
	require.NoError(t, b.Out.Drive(6))
	assert.Equal(t, int64(6), a.Out.Value())
}

func TestSignal_notify(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 1)
	cnt := &counting{Base: "cnt"}
	cnt.n = c.NewNotifySignal(cnt, "n", 1)
	cnt.q = c.NewSignal(cnt, "q", 1)
	require.NoError(t, c.Add(cnt))
	require.NoError(t, cnt.n.Connect(s.Out))
	require.NoError(t, cnt.q.Connect(s.Out))

	assert.True(t, cnt.n.Notifies())
	assert.False(t, cnt.q.Notifies())

	require.NoError(t, s.Out.Drive(1))
	require.NoError(t, s.Out.Drive(0))
	assert.Equal(t, []*hw.Signal{cnt.n, cnt.n}, cnt.updates)
	assert.Equal(t, int64(0), cnt.q.Value())
}

func TestSignalView_connect(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 8)
	lo := hwtest.NewProbe(c, "lo", 4)
	hi := hwtest.NewProbe(c, "hi", 4)
	rev := hwtest.NewProbe(c, "rev", 8)

	require.NoError(t, lo.In.Connect(s.Out.Slice(0, 4)))
	require.NoError(t, s.Out.Slice(4, 8).Connect(hi.In))
	require.NoError(t, rev.In.Connect(s.Out.Bits(7, 6, 5, 4, 3, 2, 1, 0)))

	err := lo.In.Connect(s.Out)
	assert.Equal(t, hw.ErrWidthMismatch, errors.Cause(err))

	require.NoError(t, s.Out.Drive(0x3c))
	assert.Equal(t, int64(0xc), lo.Last())
	assert.Equal(t, int64(0x3), hi.Last())
	assert.Equal(t, int64(0x3c), rev.Last())

	require.NoError(t, s.Out.Drive(0x01))
	assert.Equal(t, int64(0x80), rev.Last())
}

func TestSignal_select(t *testing.T) {
	c := hw.NewCircuit()
	s := hwtest.NewSource(c, "src", 8)
	require.NoError(t, s.Out.Drive(0xa5))

	td := []struct {
		sel   string
		width int
		value int64
		err   error
	}{
		{"0..3", 4, 0x5, nil},
		{"7..4", 4, 0x5, nil},
		{"3..0", 4, 0xa, nil},
		{"0, 2, 5..7", 5, 0x17, nil},
		{" 7 ", 1, 1, nil},
		{"0,0,0", 3, 7, nil},
		{"", 0, 0, hw.ErrSyntax},
		{"0,,1", 0, 0, hw.ErrSyntax},
		{"8", 0, 0, hw.ErrSyntax},
		{"x..2", 0, 0, hw.ErrSyntax},
		{"-1", 0, 0, hw.ErrSyntax},
	}
	for _, d := range td {
		t.Run(d.sel, func(t *testing.T) {
			v, err := s.Out.Select(d.sel)
			if d.err != nil {
				assert.Equal(t, d.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.width, v.Width())
			assert.Equal(t, d.value, v.Value())
		})
	}
}
