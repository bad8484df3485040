package cycles_test

import (
	"math/rand"
	"testing"

	"github.com/KommuSoft/fsmarkov/cycles"
	"github.com/KommuSoft/fsmarkov/transition"
)

// BenchmarkAnalyze measures the full classification of a random
// functional graph with 4096 indices.
func BenchmarkAnalyze(b *testing.B) {
	g, err := transition.Random(4096, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cycles.Analyze(g); err != nil {
			b.Fatal(err)
		}
	}
}
