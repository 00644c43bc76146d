// Command userdir browses a paginated, searchable user directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/userdir/internal/cli"
	"github.com/rshade/userdir/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
// Cobra has already printed the error when one is returned.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
