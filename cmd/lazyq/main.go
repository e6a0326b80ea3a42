// Command lazyq runs the sample query catalogue.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/lazyq/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
