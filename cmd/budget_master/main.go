// Command budget_master creates, seeds and inspects a BudgetMaster store.
//
// Commands:
//
//	init              create the store and seed the default dataset
//	restore-defaults  wipe the store and seed the defaults again
//	stats             print the row count of every table
//	accounts          list the live accounts with their balances
//
// Exit codes: 0 = success, 2 = invalid input, 3 = not found, 4 = conflict,
// 5 = illegal position, 6 = store error, 1 = any other error.
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
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(exitCode(err))
}
