// Package console parses console flags and launches the web console.
package console

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/staffdesk/internal/platform/cmd"
	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
	server "github.com/louisbranch/staffdesk/internal/services/console"
)

// Config holds console command configuration.
type Config struct {
	HTTPAddr            string        `env:"CONSOLE_HTTP_ADDR" envDefault:"localhost:8090"`
	APIBaseURL          string        `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	CacheDBPath         string        `env:"CONSOLE_CACHE_DB_PATH" envDefault:"data/console-cache.db"`
	CacheTTL            time.Duration `env:"CONSOLE_CACHE_TTL" envDefault:"30s"`
	APITimeout          time.Duration `env:"API_TIMEOUT"`
	SessionIdleTTL      time.Duration `env:"CONSOLE_SESSION_IDLE_TTL" envDefault:"2h"`
	TrustForwardedProto bool          `env:"CONSOLE_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = timeouts.APIRequest
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Staffing backend base URL")
	fs.StringVar(&cfg.CacheDBPath, "cache-db", cfg.CacheDBPath, "Query cache sqlite path; empty disables caching")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long cached reads are served")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Per-request backend timeout")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the console until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConsole, func(ctx context.Context) error {
		srv, err := server.NewServer(server.Config{
			HTTPAddr:            cfg.HTTPAddr,
			APIBaseURL:          cfg.APIBaseURL,
			CacheDBPath:         cfg.CacheDBPath,
			CacheTTL:            cfg.CacheTTL,
			APITimeout:          cfg.APITimeout,
			SessionIdleTTL:      cfg.SessionIdleTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init console server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve console: %w", err)
		}
		return nil
	})
}
