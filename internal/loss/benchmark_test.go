package loss

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/nianfudong/RCC-loss/internal/parallel"
	"github.com/nianfudong/RCC-loss/internal/tensor"
)

func benchBlob(b *testing.B, rng *rand.Rand, n, c int) *tensor.RawTensor {
	b.Helper()
	raw, err := tensor.FromSlice(randomCoords(rng, n, c, 100), tensor.Shape{n, c, 1, 1})
	if err != nil {
		b.Fatal(err)
	}
	return raw
}

func BenchmarkRelevantLossForward(b *testing.B) {
	configs := map[string]Config{
		"sequential": {Parallel: parallel.Sequential()},
		"parallel":   DefaultConfig(),
	}

	// 5 and 68 landmark layouts.
	for _, c := range []int{10, 136} {
		rng := rand.New(rand.NewSource(1))
		pred := benchBlob(b, rng, 64, c)
		truth := benchBlob(b, rng, 64, c)

		groups, err := Split(pred.Shape(), truth.Shape())
		if err != nil {
			b.Fatal(err)
		}
		pairs := pred.Num() * (groups.X.Pairs() + groups.Y.Pairs())

		for name, cfg := range configs {
			b.Run(fmt.Sprintf("C%d/%s", c, name), func(b *testing.B) {
				l := NewRelevantLoss(cfg)
				for i := 0; i < b.N; i++ {
					if _, err := l.Forward(pred, truth); err != nil {
						b.Fatal(err)
					}
				}
				b.ReportMetric(float64(pairs), "pairs/op")
			})
		}
	}
}

func BenchmarkRelevantLossBackward(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	pred := benchBlob(b, rng, 64, 136)
	truth := benchBlob(b, rng, 64, 136)
	g, err := tensor.FromSlice([]float64{1}, tensor.Shape{1})
	if err != nil {
		b.Fatal(err)
	}

	l := NewRelevantLoss(DefaultConfig())
	if _, err := l.Forward(pred, truth); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Backward(g, []bool{true, true}, pred, truth); err != nil {
			b.Fatal(err)
		}
	}
}
