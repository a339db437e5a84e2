// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/hwbus"
)

// maxSweepBits is the input width above which Sweep switches from an
// exhaustive sweep to random inputs.
const maxSweepBits = 12

// Sweep drives in with every value it can take and checks that out reads
// f(in) once the value has propagated. For inputs wider than 12 bits, 4096
// random values are used instead.
//
func Sweep(t testing.TB, in *hwbus.Signal, out hwbus.Bus, f func(int64) int64) {
	t.Helper()

	o := out.View()
	bits := in.Width()
	iter := int64(1) << uint(bits)
	random := bits > maxSweepBits
	if random {
		iter = 1 << maxSweepBits
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	max := int64(1) << uint(bits)

	start := time.Now()
	for i := int64(0); i < iter; i++ {
		v := i
		if random {
			v = rnd.Int63n(max)
		}
		if err := in.Drive(v); err != nil {
			t.Fatal(err)
		}
		if exp, got := f(v), o.Value(); exp != got {
			t.Fatalf("%s = %d: expected %s = %d, got %d", in.Name(), v, o.Name(), exp, got)
		}
	}
	t.Logf("%d values in %v", iter, time.Since(start))
}
