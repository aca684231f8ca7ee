package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/primecount"
)

// BenchmarkPi compares the segmented sieve and the Meissel-Lehmer counter
// on the same arguments, forced via thresholds. The crossover where the
// Lehmer line drops below the segmented line is what DefaultLehmerThreshold
// encodes; rerun this sweep before retuning it.
func BenchmarkPi(b *testing.B) {
	backends := []struct {
		name    string
		counter *primecount.Counter
	}{
		{"Segmented", primecount.New(primecount.DisableLehmer())},
		{"Lehmer", primecount.New(primecount.WithLehmerThreshold(primecount.DefaultDirectThreshold + 1))},
	}

	for _, bc := range backends {
		for _, x := range []uint64{1_000_000, 10_000_000, 50_000_000, 100_000_000} {
			b.Run(fmt.Sprintf("%s/x=%d", bc.name, x), func(b *testing.B) {
				b.ReportAllocs()

				var sink uint64
				for n := 0; n < b.N; n++ {
					count, err := bc.counter.Pi(x)
					if err != nil {
						b.Fatal(err)
					}
					sink = count
				}
				_ = sink
			})
		}
	}
}

// BenchmarkPiDirect measures the dense-sieve path that serves everything
// below the direct threshold.
func BenchmarkPiDirect(b *testing.B) {
	c := primecount.New()

	for _, x := range []uint64{1_000, 10_000, 100_000} {
		b.Run(fmt.Sprintf("x=%d", x), func(b *testing.B) {
			b.ReportAllocs()

			var sink uint64
			for n := 0; n < b.N; n++ {
				count, err := c.Pi(x)
				if err != nil {
					b.Fatal(err)
				}
				sink = count
			}
			_ = sink
		})
	}
}

// BenchmarkPiWindowSize sweeps the segmented window size at a fixed
// argument. Too small thrashes on per-window setup, too large loses cache
// locality.
func BenchmarkPiWindowSize(b *testing.B) {
	for _, window := range []uint64{1 << 16, 1 << 18, 1 << 20, 1 << 22} {
		c := primecount.New(primecount.DisableLehmer(), primecount.WithWindowSize(window))

		b.Run(fmt.Sprintf("window=%d", window), func(b *testing.B) {
			b.ReportAllocs()

			var sink uint64
			for n := 0; n < b.N; n++ {
				count, err := c.Pi(10_000_000)
				if err != nil {
					b.Fatal(err)
				}
				sink = count
			}
			_ = sink
		})
	}
}
