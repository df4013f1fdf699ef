// Package solve: move-string encoding of a stitched walk.
package solve

import (
	"fmt"
	"strings"

	"github.com/lockrow/keymaze/maze"
)

// Moves encodes a walk as one character per step: (0,+1)→'d', (0,-1)→'u',
// (+1,0)→'r', (-1,0)→'l'. Every consecutive pair must be exactly one unit
// apart; anything else is a contract violation by the upstream stitcher
// and yields ErrNotAdjacent.
func Moves(walk []*maze.Vertex) (string, error) {
	var sb strings.Builder
	sb.Grow(len(walk))

	for i := 0; i+1 < len(walk); i++ {
		d := walk[i+1].Pos.Sub(walk[i].Pos)
		switch d {
		case maze.Coord{X: 0, Y: 1}:
			sb.WriteByte('d')
		case maze.Coord{X: 0, Y: -1}:
			sb.WriteByte('u')
		case maze.Coord{X: 1, Y: 0}:
			sb.WriteByte('r')
		case maze.Coord{X: -1, Y: 0}:
			sb.WriteByte('l')
		default:
			return "", fmt.Errorf("%w: step %d from %v to %v", ErrNotAdjacent, i, walk[i], walk[i+1])
		}
	}

	return sb.String(), nil
}

// Solve returns the move string of the shortest valid walk from the maze
// start to its exit, or ErrNoRoute when no such walk exists.
func Solve(m *maze.Maze, opts ...Option) (string, error) {
	walk, err := Shortest(m, opts...)
	if err != nil {
		return "", err
	}

	return Moves(walk)
}
