package solve_test

import (
	"fmt"

	"github.com/lockrow/keymaze/maze"
	"github.com/lockrow/keymaze/solve"
)

// ExampleSolve solves a corridor where a key guards the only door to the
// exit: the move string walks straight through, picking the key up on the
// way.
func ExampleSolve() {
	m, err := maze.New(maze.GridFromStrings(
		"#########",
		"#S.K.D.E#",
		"#########",
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	moves, err := solve.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(moves)
	// Output:
	// rrrrrr
}

// ExampleSolve_detour shows a maze where the exit is adjacent to the start
// but sealed behind a door, forcing a detour to the key first.
func ExampleSolve_detour() {
	m, err := maze.New(maze.GridFromStrings(
		"#####",
		"#SDE#",
		"#.###",
		"#K###",
		"#####",
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	moves, err := solve.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(moves)
	// Output:
	// dduurr
}

// ExampleShortest reports unsolvable mazes with ErrNoRoute instead of a
// crash on an empty minimum.
func ExampleShortest() {
	m, err := maze.New(maze.GridFromStrings(
		"#####",
		"#S#E#",
		"#####",
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = solve.Shortest(m)
	fmt.Println(err)
	// Output:
	// solve: no valid route to the exit
}
