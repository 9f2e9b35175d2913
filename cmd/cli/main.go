// Package main is the entry point for salesctl, the sales dashboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/cli/commands"
)

func main() {
	if err := commands.NewRootCmd(dashboard.SystemClock{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
