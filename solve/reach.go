// Package solve: door-aware reachability search.
package solve

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lockrow/keymaze/maze"
)

// AvailableFrom returns the set of interesting vertices (keys, doors, exits)
// reachable from root. Doors act as dead ends: a door is recorded when the
// frontier reaches it but its neighbors are never expanded, unless the door
// is the root itself. The root is excluded from the result even when it is
// itself a key, door, or exit: a checkpoint never discovers itself.
//
// Visited state lives in a per-call scratch set, so the maze is not touched.
// Complexity: O(V) time and memory.
func AvailableFrom(m *maze.Maze, root *maze.Vertex) mapset.Set[*maze.Vertex] {
	available := mapset.New[*maze.Vertex]()
	seen := mapset.New[*maze.Vertex]()

	queue := []*maze.Vertex{root}
	seen.Put(root)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.Type.Interesting() {
			available.Put(cur)
		}
		// Doors block propagation past themselves, except at the very start.
		if cur.Type == maze.CellDoor && cur != root {
			continue
		}
		for _, n := range cur.Neighbors {
			if !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}

	available.Remove(root)

	return available
}
