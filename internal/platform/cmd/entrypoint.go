// Package cmd holds the startup plumbing shared by the console server and
// the operator CLI.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/louisbranch/staffdesk/internal/platform/config"
	"github.com/louisbranch/staffdesk/internal/platform/otel"
	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
)

// Binary names, used as otel service names and log prefixes.
const (
	ServiceConsole  = "console"
	ServiceStaffctl = "staffctl"
)

// ParseConfig fills cfg from STAFFDESK_* environment variables.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses flags registered on fs, letting them override env values.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// LogPrefix returns the bracketed log prefix for a service, e.g. "[CONSOLE] ".
func LogPrefix(service string) string {
	return "[" + strings.ToUpper(strings.TrimSpace(service)) + "] "
}

// SignalContext sets the process log prefix and returns a context cancelled
// on SIGINT or SIGTERM.
func SignalContext(service string) (context.Context, context.CancelFunc) {
	log.SetPrefix(LogPrefix(service))
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// RunWithTelemetry installs the tracer provider for service, runs fn, and
// flushes spans before returning fn's error.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	otelCfg, err := otel.LoadConfig()
	if err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, service, otelCfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer flushTelemetry(service, shutdown)
	return fn(ctx)
}

func flushTelemetry(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
