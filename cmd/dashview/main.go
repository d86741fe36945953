// Command dashview filters, sorts, paginates and summarises a pharmacy
// collection from the command line or over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/dashview/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "dashview: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
