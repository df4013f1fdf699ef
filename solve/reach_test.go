package solve_test

import (
	"testing"

	"github.com/lockrow/keymaze/maze"
	"github.com/lockrow/keymaze/solve"
)

// corridorMaze is a single corridor S . K . D . E: the key must be taken
// before the door, and the exit hides behind the door.
func corridorMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(maze.GridFromStrings(
		"#########",
		"#S.K.D.E#",
		"#########",
	))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return m
}

// at returns the vertex at (x,y) or fails the test.
func at(t *testing.T, m *maze.Maze, x, y int) *maze.Vertex {
	t.Helper()
	v := m.VertexAt(maze.Coord{X: x, Y: y})
	if v == nil {
		t.Fatalf("no vertex at (%d,%d)", x, y)
	}
	return v
}

// TestAvailableFrom_DoorBlocks verifies that a door is collected as a
// destination but never traversed through: from the start the exit stays
// invisible behind the locked door.
func TestAvailableFrom_DoorBlocks(t *testing.T) {
	m := corridorMaze(t)
	got := solve.AvailableFrom(m, m.Start())

	if got.Size() != 2 {
		t.Fatalf("available size = %d; want 2", got.Size())
	}
	if !got.Has(at(t, m, 3, 1)) {
		t.Error("key at (3,1) not available from start")
	}
	if !got.Has(at(t, m, 5, 1)) {
		t.Error("door at (5,1) not available from start")
	}
	if got.Has(at(t, m, 7, 1)) {
		t.Error("exit behind locked door reported available")
	}
}

// TestAvailableFrom_RootExcluded verifies a checkpoint never discovers
// itself: searching from the key omits the key.
func TestAvailableFrom_RootExcluded(t *testing.T) {
	m := corridorMaze(t)
	key := at(t, m, 3, 1)

	got := solve.AvailableFrom(m, key)
	if got.Has(key) {
		t.Error("root key reported in its own availability set")
	}
	if got.Size() != 1 || !got.Has(at(t, m, 5, 1)) {
		t.Errorf("available from key = %d entries; want exactly the door", got.Size())
	}
}

// TestAvailableFrom_DoorAsRoot verifies the one exception to door blocking:
// the search may pass through the root door itself.
func TestAvailableFrom_DoorAsRoot(t *testing.T) {
	m := corridorMaze(t)
	door := at(t, m, 5, 1)

	got := solve.AvailableFrom(m, door)
	if !got.Has(at(t, m, 7, 1)) {
		t.Error("exit not reachable when the door itself is the root")
	}
	if !got.Has(at(t, m, 3, 1)) {
		t.Error("key not reachable back through the root door")
	}
	if got.Has(door) {
		t.Error("root door reported in its own availability set")
	}
}

// TestAvailableFrom_Empty verifies an isolated root yields an empty set.
func TestAvailableFrom_Empty(t *testing.T) {
	m, err := maze.New(maze.GridFromStrings(
		"#####",
		"#S#E#",
		"#####",
	))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := solve.AvailableFrom(m, m.Start()); got.Size() != 0 {
		t.Errorf("available size = %d; want 0", got.Size())
	}
}

// TestAvailableFrom_Soundness replays every returned vertex and asserts it
// is connected to the root by a door-free path, doors themselves excepted
// as terminal vertices.
func TestAvailableFrom_Soundness(t *testing.T) {
	m, err := maze.New(maze.GridFromStrings(
		"#######",
		"#K.S.K#",
		"#.###.#",
		"#D.E.D#",
		"#######",
	))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Door-free reachability computed independently of AvailableFrom.
	reachable := map[*maze.Vertex]bool{m.Start(): true}
	queue := []*maze.Vertex{m.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Type == maze.CellDoor {
			continue // may be reached, never crossed
		}
		for _, n := range cur.Neighbors {
			if !reachable[n] {
				reachable[n] = true
				queue = append(queue, n)
			}
		}
	}

	solve.AvailableFrom(m, m.Start()).Each(func(v *maze.Vertex) {
		if !v.Type.Interesting() {
			t.Errorf("uninteresting vertex %v in availability set", v)
		}
		if !reachable[v] {
			t.Errorf("vertex %v unreachable without crossing a door", v)
		}
	})
}
