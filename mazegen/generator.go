// Package mazegen carves random perfect mazes with a disjoint-set forest
// and optionally seeds them with solvable key/door pairs.
package mazegen

import (
	"errors"
	"math/rand"

	"github.com/spakin/disjoint"

	"github.com/lockrow/keymaze/maze"
)

// Sentinel errors for maze generation.
var (
	// ErrBadSize indicates the room grid cannot host both a start and an
	// exit: a dimension below 1, or a single 1×1 room.
	ErrBadSize = errors.New("mazegen: room grid must hold at least two rooms")
	// ErrTooManyPairs indicates the start→exit corridor cannot host the
	// requested number of key/door pairs.
	ErrTooManyPairs = errors.New("mazegen: not enough corridor cells for key/door pairs")
)

// Options holds tunable generation parameters.
type Options struct {
	// Seed drives the random source; 0 falls back to rand.Int63().
	Seed int64
	// KeyDoorPairs is the number of key/door pairs to inject.
	KeyDoorPairs int
}

// Option is a functional option for Generate.
type Option func(*Options)

// WithSeed fixes the random seed for reproducible mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithKeyDoorPairs injects n key/door pairs onto the start→exit corridor.
func WithKeyDoorPairs(n int) Option {
	return func(o *Options) { o.KeyDoorPairs = n }
}

// room tracks carving state for one maze room: which of its east/south
// walls still stand, and its component in the disjoint-set forest.
type room struct {
	east, south bool
	reaches     *disjoint.Element
}

// Generate carves a random perfect maze with w×h rooms and returns it as a
// (2h+1)×(2w+1) grid of cell types: rooms at odd coordinates, walls and
// carved passages between them. The start sits in the top-left room and
// the exit in the bottom-right one.
func Generate(w, h int, opts ...Option) ([][]maze.CellType, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if w < 1 || h < 1 || w*h < 2 {
		// A single room cannot hold both the start and the exit.
		return nil, ErrBadSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rnd := rand.New(rand.NewSource(seed))

	// All walls present, every room its own component.
	rooms := make([][]room, h)
	for y := range rooms {
		rooms[y] = make([]room, w)
		for x := range rooms[y] {
			rooms[y][x] = room{east: true, south: true, reaches: disjoint.NewElement()}
		}
	}

	// Tear down walls between disjoint components until one remains.
	// Symmetry lets us only ever knock east or south.
	for cc := w * h; cc > 1; {
		x, y := rnd.Intn(w), rnd.Intn(h)
		horizontal := rnd.Intn(2) == 0
		var nx, ny int
		if horizontal && x < w-1 {
			nx, ny = x+1, y
		} else if !horizontal && y < h-1 {
			nx, ny = x, y+1
		} else {
			continue
		}
		if rooms[y][x].reaches.Find() == rooms[ny][nx].reaches.Find() {
			continue
		}
		if horizontal {
			rooms[y][x].east = false
		} else {
			rooms[y][x].south = false
		}
		disjoint.Union(rooms[y][x].reaches, rooms[ny][nx].reaches)
		cc--
	}

	cells := renderCells(rooms, w, h)
	cells[1][1] = maze.CellStart
	cells[2*h-1][2*w-1] = maze.CellExit

	if cfg.KeyDoorPairs > 0 {
		if err := placePairs(cells, cfg.KeyDoorPairs); err != nil {
			return nil, err
		}
	}

	return cells, nil
}

// renderCells projects the room/wall model onto a cell grid: odd
// coordinates are rooms, even ones are walls unless carved through.
func renderCells(rooms [][]room, w, h int) [][]maze.CellType {
	ch, cw := 2*h+1, 2*w+1
	cells := make([][]maze.CellType, ch)
	for y := range cells {
		cells[y] = make([]maze.CellType, cw) // zero value is CellWall
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[2*y+1][2*x+1] = maze.CellOpen
			if !rooms[y][x].east {
				cells[2*y+1][2*x+2] = maze.CellOpen
			}
			if !rooms[y][x].south {
				cells[2*y+2][2*x+1] = maze.CellOpen
			}
		}
	}
	return cells
}

// placePairs puts n key/door pairs on the unique start→exit corridor,
// alternating key then door in corridor order so the walk collects each
// key before the door it opens.
func placePairs(cells [][]maze.CellType, n int) error {
	path := corridor(cells)
	// Interior cells only; start and exit stay untouched.
	interior := path[1 : len(path)-1]
	if len(interior) < 2*n {
		return ErrTooManyPairs
	}
	// Spread the 2n checkpoints evenly along the corridor.
	stride := len(interior) / (2 * n)
	for k := 0; k < n; k++ {
		key := interior[(2*k)*stride]
		door := interior[(2*k+1)*stride]
		cells[key.Y][key.X] = maze.CellKey
		cells[door.Y][door.X] = maze.CellDoor
	}
	return nil
}

// corridor returns the unique open path from the start cell to the exit
// cell of a freshly carved perfect maze, via a local BFS over the grid.
func corridor(cells [][]maze.CellType) []maze.Coord {
	var start, exit maze.Coord
	for y, row := range cells {
		for x, t := range row {
			switch t {
			case maze.CellStart:
				start = maze.Coord{X: x, Y: y}
			case maze.CellExit:
				exit = maze.Coord{X: x, Y: y}
			}
		}
	}

	open := func(c maze.Coord) bool {
		return c.Y >= 0 && c.Y < len(cells) && c.X >= 0 && c.X < len(cells[0]) &&
			cells[c.Y][c.X] != maze.CellWall
	}

	prev := map[maze.Coord]maze.Coord{start: start}
	queue := []maze.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			break
		}
		for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			next := cur.Add(d[0], d[1])
			if !open(next) {
				continue
			}
			if _, seen := prev[next]; !seen {
				prev[next] = cur
				queue = append(queue, next)
			}
		}
	}

	var path []maze.Coord
	for c := exit; ; c = prev[c] {
		path = append(path, c)
		if c == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
