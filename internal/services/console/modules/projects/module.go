// Package projects serves project pages and their team fragments.
package projects

import (
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/module"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
)

// Option configures an projects module.
type Option func(*Module)

// WithGateway sets the projects gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithRenderer sets the page renderer.
func WithRenderer(r pagerender.Renderer) Option {
	return func(m *Module) { m.renderer = r }
}

// Module provides project routes.
type Module struct {
	gateway  Gateway
	renderer pagerender.Renderer
}

// New returns an projects module configured by the given options.
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
func (Module) ID() string { return "projects" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	_, unavailable := m.gateway.(unavailableGateway)
	return m.gateway != nil && !unavailable
}

// Mount wires project route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.renderer))
	return module.Mount{Prefixes: []string{routepath.Projects, routepath.ProjectsPrefix}, Handler: mux}, nil
}
