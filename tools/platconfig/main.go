// Command platconfig turns a board's platform.toml into Go constants. It is
// run through go:generate from each platform package.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(ctx).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
	_ = log.Std().Sync()
}
