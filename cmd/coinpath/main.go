// SPDX-License-Identifier: MIT
// coinpath finds the shortest road route between two cities whose toll
// stays within a coin budget.
//
// Usage:
//
//	coinpath solve  [--graph=<file>|--sample=<name>] --from=A --to=I --budget=8 [--heuristic=exact] [--trace]
//	coinpath batch  [--graph=<file>|--scenario=<name>] [--parallel=4]
//	coinpath serve  [--graph=<file>|--sample=<name>] [--addr=:8080]
//	coinpath sample [--name=tradeoff] [--format=yaml]
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
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
