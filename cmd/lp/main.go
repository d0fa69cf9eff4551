// Command lp talks to the LiquidPlanner API from the shell. Credentials and
// executor settings come from LP_* environment variables or a dotenv file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyle182810/liquidplanner/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(config.New, os.Stdout, os.Stderr).ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
