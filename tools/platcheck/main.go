// Command platcheck verifies that the platform packages only build with
// exactly one plat_* tag. It type-checks them under every tag set in a
// matrix and compares the outcome with what each set should produce.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(ctx).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
