// Package module defines the contract console feature modules implement.
package module

import "net/http"

// Mount is the routing contribution of a module.
type Mount struct {
	// Prefixes are the mux patterns the handler serves.
	Prefixes []string
	Handler  http.Handler
}

// Module is a console feature that mounts its own routes.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules that can report degraded mode.
type HealthReporter interface {
	Healthy() bool
}
