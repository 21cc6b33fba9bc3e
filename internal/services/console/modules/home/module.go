// Package home serves the console landing page.
package home

import (
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/module"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
)

// Module renders the landing page.
type Module struct {
	renderer pagerender.Renderer
}

// New returns a home module.
func New(renderer pagerender.Renderer) Module {
	return Module{renderer: renderer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the landing route. Unknown paths fall through to a
// not-found page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Root+"{$}", m.handleHome)
	mux.HandleFunc(routepath.Root, m.handleNotFound)
	return module.Mount{Prefixes: []string{routepath.Root}, Handler: mux}, nil
}

func (m Module) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, _ := m.renderer.Localizer(w, r)
	m.renderer.WritePage(w, r, pagerender.Page{
		Title:    templates.T(loc, "nav.home"),
		Nav:      templates.NavHome,
		Fragment: templates.Home(loc),
	})
}

func (m Module) handleNotFound(w http.ResponseWriter, r *http.Request) {
	m.renderer.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "error.not_found", "no route for "+r.URL.Path))
}
