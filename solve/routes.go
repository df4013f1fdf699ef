// Package solve: exhaustive checkpoint-ordering enumeration with
// key-balance pruning.
package solve

import "github.com/lockrow/keymaze/maze"

// Routes enumerates every complete checkpoint ordering from the maze start
// to the exit. Each returned route begins with the start vertex, visits
// keys and doors in an order that keeps the running key balance
// non-negative at every prefix, never revisits a checkpoint, and ends at
// the exit. An empty result means the maze is unsolvable.
//
// Worst-case exponential in the number of checkpoints; bound enumeration
// with WithMaxRoutes when that matters.
func Routes(m *maze.Maze, opts ...Option) [][]*maze.Vertex {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &enumerator{maze: m, maxRoutes: cfg.MaxRoutes}
	e.extend([]*maze.Vertex{m.Start()}, 0)

	return e.routes
}

// enumerator accumulates complete routes during the recursive expansion.
type enumerator struct {
	maze      *maze.Maze
	routes    [][]*maze.Vertex
	maxRoutes int
}

// full reports whether the route cap has been reached.
func (e *enumerator) full() bool {
	return e.maxRoutes > 0 && len(e.routes) >= e.maxRoutes
}

// extend grows path by every checkpoint reachable from its last vertex,
// recording exit-terminated extensions and recursing into the rest.
// keys is the running key balance along path.
func (e *enumerator) extend(path []*maze.Vertex, keys int) {
	available := AvailableFrom(e.maze, path[len(path)-1])
	// No checkpoint is ever revisited.
	for _, visited := range path {
		available.Remove(visited)
	}

	available.Each(func(node *maze.Vertex) {
		if e.full() {
			return
		}

		next := keys
		switch node.Type {
		case maze.CellKey:
			next++
		case maze.CellDoor:
			next--
		}
		if next < 0 {
			return // more doors than keys on this branch
		}

		extended := make([]*maze.Vertex, len(path), len(path)+1)
		copy(extended, path)
		extended = append(extended, node)

		if node.Type == maze.CellExit {
			e.routes = append(e.routes, extended)
			return
		}
		e.extend(extended, next)
	})
}
