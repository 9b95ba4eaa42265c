// Command knightsmove finds shortest knight-move policies between boards.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/statespace/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "knightsmove:", err)
		os.Exit(1)
	}
}
