package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/t-kuni/jobconf/cmd"
)

func main() {
	godotenv.Load(".env")

	// Ctrl+C cancels the context so the lock file is released on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cmd.NewRootCommand().CobraCommand.ExecuteContext(ctx)
	stop()
	if err != nil {
		cmd.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
