// Package keymaze solves key/door grid mazes: collect keys, open doors,
// reach the exit in the fewest moves.
//
// What's inside:
//
//	maze/    - coordinates, cell types, and the immutable maze graph
//	solve/   - door-aware reachability, route enumeration, path stitching,
//	           shortest-walk selection, and move-string encoding
//	mazegen/ - random solvable maze generation for tests and benchmarks
//	session/ - wire-format parsing and the receive, solve, send loop against
//	           a puzzle server (TCP or WebSocket)
//	cmd/     - the keymaze executable
//
// Quick ASCII example (.=floor, S=start, K=key, D=door, E=exit):
//
//	#########
//	#S.K.D.E#
//	#########
//
// solves to the move string "rrrrrr": the walk collects the key on its way
// through the door to the exit.
package keymaze
