// Package main runs the staffctl operator CLI.
package main

import (
	"os"

	"github.com/louisbranch/staffdesk/internal/cmd/staffctl"
	entrypoint "github.com/louisbranch/staffdesk/internal/platform/cmd"
)

func main() {
	ctx, stop := entrypoint.SignalContext(entrypoint.ServiceStaffctl)
	err := staffctl.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
