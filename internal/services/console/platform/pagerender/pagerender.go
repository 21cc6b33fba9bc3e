// Package pagerender centralizes console page rendering for full-page and
// HTMX fragment responses.
package pagerender

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/staffdesk/internal/services/console/i18n"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/flash"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/httpx"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
)

// ModalSource renders the modal currently open for the request's session,
// or nil when none is open.
type ModalSource func(r *http.Request, loc templates.Localizer) templ.Component

// Page describes a full page response.
type Page struct {
	Title      string
	Nav        templates.Nav
	StatusCode int
	Fragment   templ.Component
}

// Renderer writes console pages.
type Renderer struct {
	policy requestmeta.SchemePolicy
	modal  ModalSource
}

// New builds a renderer. modal may be nil.
func New(policy requestmeta.SchemePolicy, modal ModalSource) Renderer {
	return Renderer{policy: policy, modal: modal}
}

// Localizer resolves the request language.
func (rr Renderer) Localizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, string) {
	printer, tag := i18n.PrinterFor(w, r)
	return printer, tag.String()
}

// WritePage renders page inside the layout, with the pending flash notice
// and the open modal, if any.
func (rr Renderer) WritePage(w http.ResponseWriter, r *http.Request, page Page) {
	if w == nil {
		return
	}
	loc, lang := rr.Localizer(w, r)
	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}

	var modal templ.Component
	if rr.modal != nil {
		modal = rr.modal(r, loc)
	}
	layout := templates.Layout(templates.LayoutOptions{
		Title: page.Title,
		Lang:  lang,
		Loc:   loc,
		Nav:   page.Nav,
		Toast: rr.flashToast(w, r, loc),
		Modal: modal,
	})

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), page.Fragment)
	if err := layout.Render(ctx, &buf); err != nil {
		log.Printf("render page %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// WriteFragment renders components back to back without the layout.
func (rr Renderer) WriteFragment(w http.ResponseWriter, r *http.Request, status int, components ...templ.Component) {
	if w == nil {
		return
	}
	var buf bytes.Buffer
	ctx := httpx.RequestContext(r)
	for _, c := range components {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, &buf); err != nil {
			log.Printf("render fragment %s: %v", r.URL.Path, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}
	if status <= 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// WriteError renders err as a page-level error state.
func (rr Renderer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	loc, _ := rr.Localizer(w, r)
	status := apperrors.HTTPStatus(err)
	fragment := templates.ErrorState(PublicMessage(loc, err), loc)
	if httpx.IsHTMXRequest(r) {
		rr.WriteFragment(w, r, status, fragment)
		return
	}
	rr.WritePage(w, r, Page{Title: templates.T(loc, "error.title"), StatusCode: status, Fragment: fragment})
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return templates.T(loc, key)
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return templates.T(loc, "error.not_found")
	case apperrors.KindUnavailable:
		return templates.T(loc, "error.unavailable")
	case apperrors.KindForbidden:
		return templates.T(loc, "error.forbidden")
	case apperrors.KindInvalidInput:
		return templates.T(loc, "error.invalid_request")
	}
	return http.StatusText(apperrors.HTTPStatus(err))
}

func (rr Renderer) flashToast(w http.ResponseWriter, r *http.Request, loc templates.Localizer) *templates.Toast {
	notice, ok := flash.ReadAndClear(w, r, rr.policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(templates.T(loc, notice.Key))
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}
