package intmath

import (
	"math"
	"testing"
)

func TestSqrt(t *testing.T) {
	cases := map[uint64]uint64{
		0:              0,
		1:              1,
		2:              1,
		3:              1,
		4:              2,
		8:              2,
		9:              3,
		10:             3,
		99:             9,
		100:            10,
		101:            10,
		1 << 32:        1 << 16,
		math.MaxUint64: 4294967295,
	}
	for x, want := range cases {
		if got := Sqrt(x); got != want {
			t.Errorf("Sqrt(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestSqrtExactBoundaries(t *testing.T) {
	// k²−1, k², k²+1 must straddle the root exactly; a float rounding slip
	// here shifts a and b in the Lehmer identity.
	for _, k := range []uint64{2, 3, 10, 1000, 65536, 1 << 20, 4294967295} {
		sq := k * k
		if got := Sqrt(sq); got != k {
			t.Errorf("Sqrt(%d²) = %d, want %d", k, got, k)
		}
		if got := Sqrt(sq - 1); got != k-1 {
			t.Errorf("Sqrt(%d²−1) = %d, want %d", k, got, k-1)
		}
		if sq+1 > sq {
			if got := Sqrt(sq + 1); got != k {
				t.Errorf("Sqrt(%d²+1) = %d, want %d", k, got, k)
			}
		}
	}
}

func TestCbrt(t *testing.T) {
	cases := map[uint64]uint64{
		0:              0,
		1:              1,
		7:              1,
		8:              2,
		26:             2,
		27:             3,
		28:             3,
		999:            9,
		1000:           10,
		1_000_000:      100,
		math.MaxUint64: 2642245,
	}
	for x, want := range cases {
		if got := Cbrt(x); got != want {
			t.Errorf("Cbrt(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestCbrtExactBoundaries(t *testing.T) {
	for _, k := range []uint64{2, 3, 10, 100, 1000, 65536, 2097151} {
		cb := k * k * k
		if got := Cbrt(cb); got != k {
			t.Errorf("Cbrt(%d³) = %d, want %d", k, got, k)
		}
		if got := Cbrt(cb - 1); got != k-1 {
			t.Errorf("Cbrt(%d³−1) = %d, want %d", k, got, k-1)
		}
		if got := Cbrt(cb + 1); got != k {
			t.Errorf("Cbrt(%d³+1) = %d, want %d", k, got, k)
		}
	}
}
