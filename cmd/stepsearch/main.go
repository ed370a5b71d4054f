// Command stepsearch steps graph-search algorithms over a state-space graph,
// either as a batch run printing every step or as an interactive terminal UI.
//
//	stepsearch run --algorithm ucs --seed 7
//	stepsearch tui --graph maze.yaml
//	stepsearch generate --seed 7 --out classroom.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
