// Package solve finds the shortest valid walk through a key/door maze:
// every door on the walk must be preceded by a spare collected key.
//
// What:
//
//   - AvailableFrom: door-aware reachability: the set of keys, doors, and
//     exits reachable from a root without passing through any locked door
//     (doors are collected as destinations but never traversed through,
//     except the root itself).
//   - Routes: exhaustive enumeration of checkpoint orderings from the start
//     to the exit, pruning any ordering whose running key balance would go
//     negative and never revisiting a checkpoint.
//   - Shortest: stitches each ordering into a full cell-by-cell walk via
//     per-leg breadth-first searches and returns the shortest walk found.
//   - Moves: encodes a walk as a compact move string over {u,d,l,r}.
//   - Solve: Shortest followed by Moves.
//
// Why:
//
//   - A plain shortest-path search cannot honor the key/door constraint:
//     the cheapest ordering of pickups is not known in advance. Splitting
//     the problem into ordering enumeration plus per-leg shortest paths
//     keeps each part simple and independently testable.
//
// Complexity (V = walkable cells, C = checkpoints):
//
//   - AvailableFrom: O(V) time and memory per call.
//   - Routes: worst case exponential in C (all valid interleavings are
//     enumerated); bounded by the no-revisit rule and WithMaxRoutes.
//   - Shortest: O(R × C × V) for R enumerated routes.
//
// Determinism:
//
//	Route discovery order follows set iteration and is not deterministic;
//	Shortest breaks length ties arbitrarily (first found wins). All
//	equal-length walks are equally valid answers.
//
// Errors:
//
//   - ErrNoRoute: no checkpoint ordering reaches the exit; the maze is
//     unsolvable under the key/door constraint.
//   - ErrLegUnreachable: a stitched leg has no connecting path; cannot
//     occur for orderings produced by Routes.
//   - ErrNotAdjacent: a walk handed to Moves contains a non-unit step
//     (contract violation by the caller).
//
// Searches keep per-call scratch maps for visited/predecessor state, so a
// built maze.Maze is never mutated and solves may run concurrently against
// one maze.
package solve
