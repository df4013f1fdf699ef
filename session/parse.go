// Package session: decoding raw maze text into cell-type grids.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lockrow/keymaze/maze"
)

// Sentinel errors for grid decoding.
var (
	// ErrBadTagWidth indicates a maze row whose length is not a whole
	// number of cell tags.
	ErrBadTagWidth = errors.New("session: row length is not a multiple of the cell tag width")
	// ErrNoExit indicates the decoded grid has no exit cell.
	ErrNoExit = errors.New("session: grid has no exit cell")
)

// DefaultCellWidth is the tag width of the original wire protocol.
const DefaultCellWidth = 2

// TagMap resolves a raw cell tag to its cell type. Tags absent from the
// map decode as open floor.
type TagMap map[string]maze.CellType

// DefaultTags returns the tag map of the original wire protocol.
func DefaultTags() TagMap {
	return TagMap{
		"##": maze.CellWall,
		"Om": maze.CellKey,
		"{}": maze.CellDoor,
		"<>": maze.CellExit,
	}
}

// startPos is where the protocol fixes the start cell; the wire format has
// no start tag.
var startPos = maze.Coord{X: 1, Y: 1}

// ParseGrid decodes raw maze text into a grid of cell types. Rows are
// newline-separated; each row is split into fixed-width tags and resolved
// through tags. The cell at (1,1) is marked as the start. Trailing blank
// lines are ignored; rectangularity is left to maze.New.
func ParseGrid(text string, cellWidth int, tags TagMap) ([][]maze.CellType, error) {
	if tags == nil {
		tags = DefaultTags()
	}
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}

	var cells [][]maze.CellType
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if len(line)%cellWidth != 0 {
			return nil, fmt.Errorf("%w: row %q has length %d", ErrBadTagWidth, line, len(line))
		}
		row := make([]maze.CellType, 0, len(line)/cellWidth)
		for i := 0; i < len(line); i += cellWidth {
			tag := line[i : i+cellWidth]
			t, known := tags[tag]
			if !known {
				t = maze.CellOpen
			}
			row = append(row, t)
		}
		cells = append(cells, row)
	}

	hasExit := false
	for _, row := range cells {
		for _, t := range row {
			if t == maze.CellExit {
				hasExit = true
			}
		}
	}
	if !hasExit {
		return nil, ErrNoExit
	}

	if startPos.Y < len(cells) && startPos.X < len(cells[startPos.Y]) &&
		cells[startPos.Y][startPos.X] == maze.CellOpen {
		cells[startPos.Y][startPos.X] = maze.CellStart
	}

	return cells, nil
}
