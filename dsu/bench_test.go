package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlset/dsu"
)

// benchmarkLinks is a helper that links `pairs` random pairs drawn from a
// universe of n int elements. The generator is seeded deterministically so
// every run replays the same workload.
func benchmarkLinks(b *testing.B, n, pairs int) {
	r := rand.New(rand.NewSource(42))
	edges := make([][2]int, pairs)
	for i := range edges {
		edges[i] = [2]int{r.Intn(n), r.Intn(n)}
	}

	b.ResetTimer() // ignore workload generation
	for i := 0; i < b.N; i++ {
		d := dsu.New[int]()
		for _, e := range edges {
			if err := d.Link(e[0], e[1]); err != nil {
				b.Fatalf("Link failed: %v", err)
			}
		}
	}
}

// BenchmarkLink_Small links 1k random pairs over 1k elements.
func BenchmarkLink_Small(b *testing.B) {
	benchmarkLinks(b, 1_000, 1_000)
}

// BenchmarkLink_Medium links 50k random pairs over 10k elements.
func BenchmarkLink_Medium(b *testing.B) {
	benchmarkLinks(b, 10_000, 50_000)
}

// BenchmarkIsLinked_Compressed measures repeated queries on a long chain;
// after the first sweep every path is compressed to depth one.
func BenchmarkIsLinked_Compressed(b *testing.B) {
	const n = 10_000
	d := dsu.New[int]()
	for i := 1; i < n; i++ {
		if err := d.Link(i-1, i); err != nil {
			b.Fatalf("Link failed: %v", err)
		}
	}
	r := rand.New(rand.NewSource(7))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.IsLinked(r.Intn(n), r.Intn(n)); err != nil {
			b.Fatalf("IsLinked failed: %v", err)
		}
	}
}

// BenchmarkSets_Decompose measures the finalizing decomposition of 10k
// elements in 100 chains.
func BenchmarkSets_Decompose(b *testing.B) {
	const n, chains = 10_000, 100
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		d := dsu.New[int]()
		for j := 0; j < n; j++ {
			if j%(n/chains) == 0 {
				if _, err := d.Insert(j); err != nil {
					b.Fatalf("Insert failed: %v", err)
				}
				continue
			}
			if err := d.Link(j-1, j); err != nil {
				b.Fatalf("Link failed: %v", err)
			}
		}
		b.StartTimer()

		if _, err := d.Sets(); err != nil {
			b.Fatalf("Sets failed: %v", err)
		}
	}
}
