// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwbus_test

import (
	"testing"

	hw "github.com/db47h/hwbus"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plain struct {
	hw.Base
}

type badKind struct {
	hw.Base
	A *hw.Signal `hw:"inout"`
}

type badWidth struct {
	hw.Base
	A *hw.Signal `hw:"in,64"`
}

type badType struct {
	hw.Base
	A int `hw:"in"`
}

type unexported struct {
	hw.Base
	a *hw.Signal `hw:"in"`
}

type untagged struct {
	hw.Base
	In    *hw.Signal `hw:"in,3"`
	Out   *hw.Signal `hw:"out,,q"`
	Other *hw.Signal
}

func TestCircuit_Mount(t *testing.T) {
	c := hw.NewCircuit()
	m := &mux4{Base: "mux"}
	require.NoError(t, c.Mount(m))
	assert.Equal(t, 4, m.A.Width())
	assert.Equal(t, 1, m.S.Width())
	assert.True(t, m.A.Notifies())
	assert.False(t, m.Out.Notifies())
	assert.Equal(t, "mux:sel_0", m.S.Name())
	assert.Equal(t, []*hw.Signal{m.A, m.B, m.S, m.Out}, c.Signals(m))

	err := c.Mount(m)
	assert.Equal(t, hw.ErrDuplicate, errors.Cause(err))
	assert.Len(t, c.Signals(m), 4)

	u := &untagged{Base: "u"}
	require.NoError(t, c.Mount(u))
	assert.Equal(t, 3, u.In.Width())
	assert.Equal(t, "u:q_0", u.Out.Name())
	assert.Nil(t, u.Other)
	_, err = c.Lookup("u.q")
	assert.NoError(t, err)
}

func TestCircuit_MountErrors(t *testing.T) {
	td := []struct {
		name string
		comp hw.Component
		err  error
	}{
		{"value", plain{Base: "p"}, nil},
		{"kind", &badKind{Base: "k"}, hw.ErrSyntax},
		{"width", &badWidth{Base: "w"}, hw.ErrSyntax},
		{"type", &badType{Base: "t"}, nil},
		{"unexported", &unexported{Base: "x"}, nil},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			c := hw.NewCircuit()
			err := c.Mount(d.comp)
			require.Error(t, err)
			if d.err != nil {
				assert.Equal(t, d.err, errors.Cause(err))
			}
			assert.Empty(t, c.Components())
			assert.Equal(t, 0, c.Stats().Signals)
		})
	}
}
