// Command famalloc allocates indivisible goods among families from scenario files.
//
// Usage:
//
//	famalloc run scenario.yaml --protocol enhanced-rwav --threshold 0.6 --trace
//	famalloc run scenario.yaml --watch
//	famalloc check scenario.toml --output yaml
//	famalloc weights --r 6 --k 2
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
