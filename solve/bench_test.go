package solve_test

import (
	"testing"

	"github.com/lockrow/keymaze/maze"
	"github.com/lockrow/keymaze/mazegen"
	"github.com/lockrow/keymaze/solve"
)

// benchMaze builds a deterministic generated maze for benchmarking.
func benchMaze(b *testing.B, w, h, pairs int) *maze.Maze {
	b.Helper()
	cells, err := mazegen.Generate(w, h, mazegen.WithSeed(42), mazegen.WithKeyDoorPairs(pairs))
	if err != nil {
		b.Fatalf("Generate error: %v", err)
	}
	m, err := maze.New(cells)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	return m
}

// BenchmarkAvailableFrom measures one reachability sweep on a 25×25-room maze.
func BenchmarkAvailableFrom(b *testing.B) {
	m := benchMaze(b, 25, 25, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solve.AvailableFrom(m, m.Start())
	}
}

// BenchmarkSolve measures the full pipeline on generated mazes of growing size.
func BenchmarkSolve(b *testing.B) {
	for _, size := range []struct {
		name  string
		w, h  int
		pairs int
	}{
		{"9x7x1", 9, 7, 1},
		{"15x15x2", 15, 15, 2},
		{"25x25x3", 25, 25, 3},
	} {
		b.Run(size.name, func(b *testing.B) {
			m := benchMaze(b, size.w, size.h, size.pairs)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := solve.Solve(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
