// Package solve: path stitching and shortest-walk selection.
package solve

import "github.com/lockrow/keymaze/maze"

// Stitch expands a checkpoint route into the full cell-by-cell walk from
// its first vertex to its last. Each consecutive checkpoint pair is joined
// by an unweighted shortest path; the shared endpoint of adjacent legs is
// kept only once. Returns ErrLegUnreachable if any leg cannot be joined.
func Stitch(m *maze.Maze, route []*maze.Vertex) ([]*maze.Vertex, error) {
	var walk []*maze.Vertex
	for i := 0; i+1 < len(route); i++ {
		leg, err := legPath(route[i], route[i+1])
		if err != nil {
			return nil, err
		}
		if i > 0 {
			leg = leg[1:] // drop the joint duplicated from the previous leg
		}
		walk = append(walk, leg...)
	}
	if walk == nil {
		walk = []*maze.Vertex{route[0]}
	}

	return walk, nil
}

// Shortest enumerates all valid routes, stitches each into a full walk,
// and returns the walk with the fewest vertices. Length ties are broken
// arbitrarily: the first walk found wins. Returns ErrNoRoute when the maze
// is unsolvable.
func Shortest(m *maze.Maze, opts ...Option) ([]*maze.Vertex, error) {
	routes := Routes(m, opts...)
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	var best []*maze.Vertex
	for _, route := range routes {
		walk, err := Stitch(m, route)
		if err != nil {
			return nil, err
		}
		if best == nil || len(walk) < len(best) {
			best = walk
		}
	}

	return best, nil
}

// legPath runs a point-to-point breadth-first search from src to dst and
// reconstructs the shortest connecting path (src first, dst last) via a
// per-call predecessor map. A door vertex may only be entered when it is
// dst itself; any other door blocks the frontier.
func legPath(src, dst *maze.Vertex) ([]*maze.Vertex, error) {
	if src == dst {
		return []*maze.Vertex{src}, nil
	}

	prev := map[*maze.Vertex]*maze.Vertex{src: nil}
	queue := []*maze.Vertex{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			break
		}
		for _, n := range cur.Neighbors {
			if n.Type == maze.CellDoor && n != dst {
				continue
			}
			if _, visited := prev[n]; !visited {
				prev[n] = cur
				queue = append(queue, n)
			}
		}
	}

	if _, reached := prev[dst]; !reached {
		return nil, ErrLegUnreachable
	}

	// Walk the predecessor chain back to src, then reverse.
	var path []*maze.Vertex
	for v := dst; v != nil; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
