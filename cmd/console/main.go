// Package main starts the staffing web console.
package main

import (
	"flag"
	"log"
	"os"

	consolecmd "github.com/louisbranch/staffdesk/internal/cmd/console"
	entrypoint "github.com/louisbranch/staffdesk/internal/platform/cmd"
)

func main() {
	cfg, err := consolecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := entrypoint.SignalContext(entrypoint.ServiceConsole)
	defer stop()

	if err := consolecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
