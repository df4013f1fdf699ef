package maze

// GridFromStrings builds a cell-type grid from single-character rows:
// '#' wall, 'S' start, 'K' key, 'D' door, 'E' exit; anything else is open
// floor. Handy for fixtures and examples; wire-format decoding lives in the
// session package.
func GridFromStrings(rows ...string) [][]CellType {
	cells := make([][]CellType, len(rows))
	for y, row := range rows {
		cells[y] = make([]CellType, len(row))
		for x, r := range row {
			switch r {
			case '#':
				cells[y][x] = CellWall
			case 'S':
				cells[y][x] = CellStart
			case 'K':
				cells[y][x] = CellKey
			case 'D':
				cells[y][x] = CellDoor
			case 'E':
				cells[y][x] = CellExit
			default:
				cells[y][x] = CellOpen
			}
		}
	}
	return cells
}
