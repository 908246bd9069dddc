package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"filecat/cmd"
	"filecat/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if syncErr := logging.Sync(); syncErr != nil {
		fmt.Fprintf(os.Stderr, "filecat: flushing logs: %v\n", syncErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
