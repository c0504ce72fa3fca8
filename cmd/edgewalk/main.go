package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/edgewalk/internal/cli"
)

var version string

func main() {
	// trap Ctrl+C and cancel the walk
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute(ctx, version)
}
