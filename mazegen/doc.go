// Package mazegen generates random solvable key/door mazes, primarily as
// fixtures for tests and benchmarks.
//
// What:
//
//   - Generate carves a perfect maze (exactly one corridor between any two
//     rooms) on a (2w+1)×(2h+1) cell grid by randomized wall removal over a
//     disjoint-set forest, Kruskal style: walls fall until all rooms share
//     one component.
//   - The start is placed in the top-left room and the exit in the
//     bottom-right room.
//   - WithKeyDoorPairs injects n key/door pairs onto the unique start→exit
//     corridor, alternating key before door in corridor order, so every
//     generated maze stays solvable by construction and the running key
//     balance never dips below zero.
//
// Why:
//
//   - Property tests over the solver need arbitrarily many distinct mazes
//     whose solvability is known a priori.
//
// Complexity: O(W×H) expected for carving, O(W×H) for placement.
//
// Errors:
//
//   - ErrBadSize: requested room grid cannot hold both a start and an exit.
//   - ErrTooManyPairs: the start→exit corridor is too short to host the
//     requested number of key/door pairs.
package mazegen
