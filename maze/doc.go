// Package maze models a key/door puzzle grid as an immutable graph of
// vertices, one per walkable cell.
//
// What:
//
//   - Coord is a plain 2D integer coordinate with component-wise addition,
//     usable directly as a map key.
//   - CellType is a closed enumeration of cell kinds: wall, open floor,
//     start, key, door, exit. Walls never become vertices.
//   - Vertex carries its position, cell type, and the neighbor list wired
//     once at construction time. Vertices hold no search state; traversals
//     keep their own scratch maps, so a built Maze is read-only.
//   - New validates the input grid and wires every non-wall cell to its
//     in-bounds, non-wall 4-directional neighbors.
//
// Why:
//
//   - The solve package enumerates checkpoint orderings and stitches
//     shortest paths over this graph; an immutable graph lets those searches
//     run independently (and, if desired, concurrently) against one Maze.
//
// Complexity:
//
//   - New: O(W×H) time and memory (each cell probed against 4 offsets).
//   - VertexAt, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart: no cell is tagged as the start.
//   - ErrMultipleStarts: more than one cell is tagged as the start.
package maze
