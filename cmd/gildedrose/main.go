// Command gildedrose ages the Gilded Rose stock and checks it against scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/gildedrose/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
