// Package modals serves the single-dialog workflow: opening a modal request,
// closing it, and submitting its one backend write.
package modals

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/staffdesk/internal/services/console/module"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/sessioncookie"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

// Option configures a modals module.
type Option func(*Module)

// WithGateway sets the read gateway.
func WithGateway(g Gateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithRunner sets the mutation runner.
func WithRunner(r *workflow.Runner) Option {
	return func(m *Module) { m.runner = r }
}

// WithSessions sets the per-session workflow stores.
func WithSessions(s *workflow.Sessions) Option {
	return func(m *Module) { m.sessions = s }
}

// WithRenderer sets the page renderer.
func WithRenderer(r pagerender.Renderer) Option {
	return func(m *Module) { m.renderer = r }
}

// WithSchemePolicy sets the cookie security policy.
func WithSchemePolicy(p requestmeta.SchemePolicy) Option {
	return func(m *Module) { m.policy = p }
}

// Module provides modal routes.
type Module struct {
	gateway  Gateway
	runner   *workflow.Runner
	sessions *workflow.Sessions
	renderer pagerender.Renderer
	policy   requestmeta.SchemePolicy
}

// New returns a modals module configured by the given options.
func New(opts ...Option) *Module {
	m := &Module{}
	for _, opt := range opts {
		opt(m)
	}
	if m.gateway == nil {
		m.gateway = unavailableGateway{}
	}
	if m.sessions == nil {
		m.sessions = workflow.NewSessions(0)
	}
	return m
}

// ID returns a stable module identifier.
func (*Module) ID() string { return "modals" }

// Healthy reports whether the module can load records and submit writes.
func (m *Module) Healthy() bool {
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable && m.runner != nil
}

// SetRenderer replaces the renderer once the page renderer, which itself
// reads open modals from this module, has been built.
func (m *Module) SetRenderer(r pagerender.Renderer) {
	m.renderer = r
}

// Mount wires modal route handlers.
func (m *Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{
		service:  service{gateway: m.gateway},
		runner:   m.runner,
		sessions: m.sessions,
		renderer: m.renderer,
		policy:   m.policy,
	}
	mux.HandleFunc("POST "+routepath.ModalOpen, h.handleOpen)
	mux.HandleFunc("POST "+routepath.ModalClose, h.handleClose)
	mux.HandleFunc("POST "+routepath.ModalSubmit, h.handleSubmit)
	return module.Mount{Prefixes: []string{routepath.ModalPrefix}, Handler: mux}, nil
}

// RenderOpen renders the modal open for the request's session, so a full
// page load shows the same dialog. It returns nil when none is open.
func (m *Module) RenderOpen(r *http.Request, loc templates.Localizer) templ.Component {
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	store, ok := m.sessions.Lookup(sessionID)
	if !ok {
		return nil
	}
	current, ok := store.Current()
	if !ok {
		return nil
	}
	svc := service{gateway: m.gateway}
	return templates.Modal(svc.view(r.Context(), current, loc), loc)
}

// Sessions exposes the store registry for eviction.
func (m *Module) Sessions() *workflow.Sessions {
	return m.sessions
}
