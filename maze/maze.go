// Package maze builds an immutable graph from a rectangular grid of cell
// types. Construction allocates one Vertex per non-wall cell and wires
// symmetric 4-directional adjacency; out-of-bounds and wall probes are
// simply skipped.
package maze

// neighborOffsets are the four axis-aligned unit displacements probed
// during adjacency wiring, in (dx, dy) form.
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Maze is an immutable graph over a rectangular key/door puzzle grid.
// grid[y][x] is nil for wall cells. Once New returns, nothing in the
// structure is ever mutated; searches keep their own scratch state.
type Maze struct {
	width, height int
	grid          [][]*Vertex
	start         *Vertex
	exit          *Vertex
}

// New constructs a Maze from a non-empty, rectangular grid of cell types.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNoStart or
// ErrMultipleStarts when the start cell count is not exactly one.
// Complexity: O(W×H) time and memory.
func New(cells [][]CellType) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{
		width:  w,
		height: h,
		grid:   make([][]*Vertex, h),
	}

	// Allocate one vertex per non-wall cell.
	for y := 0; y < h; y++ {
		m.grid[y] = make([]*Vertex, w)
		for x := 0; x < w; x++ {
			t := cells[y][x]
			if t == CellWall {
				continue
			}
			v := &Vertex{Pos: Coord{X: x, Y: y}, Type: t}
			m.grid[y][x] = v
			switch t {
			case CellStart:
				if m.start != nil {
					return nil, ErrMultipleStarts
				}
				m.start = v
			case CellExit:
				m.exit = v
			}
		}
	}
	if m.start == nil {
		return nil, ErrNoStart
	}

	// Wire symmetric adjacency: each vertex probes its four unit offsets,
	// so every edge is appended once from each endpoint.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := m.grid[y][x]
			if v == nil {
				continue
			}
			for _, d := range neighborOffsets {
				n := v.Pos.Add(d[0], d[1])
				if !m.InBounds(n) {
					continue
				}
				if nv := m.grid[n.Y][n.X]; nv != nil {
					v.Neighbors = append(v.Neighbors, nv)
				}
			}
		}
	}

	return m, nil
}

// Width returns the number of columns in the grid.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows in the grid.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether c lies within the grid boundaries.
func (m *Maze) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// VertexAt returns the vertex at c, or nil for walls and out-of-bounds
// coordinates.
func (m *Maze) VertexAt(c Coord) *Vertex {
	if !m.InBounds(c) {
		return nil
	}
	return m.grid[c.Y][c.X]
}

// Start returns the unique start vertex. Never nil on a Maze built by New.
func (m *Maze) Start() *Vertex { return m.start }

// Exit returns the exit vertex, or nil if the grid has none.
func (m *Maze) Exit() *Vertex { return m.exit }

// Vertices returns every vertex in row-major order.
// Complexity: O(W×H).
func (m *Maze) Vertices() []*Vertex {
	out := make([]*Vertex, 0, m.width*m.height)
	for _, row := range m.grid {
		for _, v := range row {
			if v != nil {
				out = append(out, v)
			}
		}
	}
	return out
}
