// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in env struct tags,
// so `env:"API_TIMEOUT"` reads STAFFDESK_API_TIMEOUT.
const EnvPrefix = "STAFFDESK_"

// ParseEnv fills target from STAFFDESK_-prefixed environment variables,
// applying envDefault values for unset ones.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
