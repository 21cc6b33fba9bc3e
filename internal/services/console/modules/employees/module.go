// Package employees serves the employee list and detail pages.
package employees

import (
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/module"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
)

// Option configures an employees module.
type Option func(*Module)

// WithGateway sets the employees gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithRenderer sets the page renderer.
func WithRenderer(r pagerender.Renderer) Option {
	return func(m *Module) { m.renderer = r }
}

// Module provides employee routes.
type Module struct {
	gateway  Gateway
	renderer pagerender.Renderer
}

// New returns an employees module configured by the given options.
// Without a gateway the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	if m.gateway == nil {
		m.gateway = unavailableGateway{}
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "employees" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	_, unavailable := m.gateway.(unavailableGateway)
	return m.gateway != nil && !unavailable
}

// Mount wires employee route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.renderer))
	return module.Mount{Prefixes: []string{routepath.Employees, routepath.EmployeesPrefix}, Handler: mux}, nil
}
