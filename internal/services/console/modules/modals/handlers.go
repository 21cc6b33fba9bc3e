package modals

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/flash"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/httpx"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/sessioncookie"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

type handlers struct {
	service  service
	runner   *workflow.Runner
	sessions *workflow.Sessions
	renderer pagerender.Renderer
	policy   requestmeta.SchemePolicy
}

func (h handlers) handleOpen(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeFailure(w, r, loc, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", err.Error()))
		return
	}
	kind, ok := workflow.ParseKind(r.PostForm.Get(templates.ModalFieldKind))
	if !ok {
		h.writeFailure(w, r, loc, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "unknown modal kind"))
		return
	}
	target := openTarget{
		kind:       kind,
		employeeID: domain.ID(strings.TrimSpace(r.PostForm.Get(templates.ModalFieldEmployeeID))),
		projectID:  domain.ID(strings.TrimSpace(r.PostForm.Get(templates.ModalFieldProjectID))),
	}

	ctx := httpx.RequestContext(r)
	req, err := h.service.loadRequest(ctx, target)
	if err != nil {
		h.writeFailure(w, r, loc, err)
		return
	}

	store := h.sessions.Store(sessioncookie.Ensure(w, r, h.policy))
	returnTo := httpx.SafeReturnPath(r.PostForm.Get(templates.ModalFieldReturnTo), fallbackReturn(target))
	opened := store.Open(req, returnTo)
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, returnTo)
		return
	}
	h.renderer.WriteFragment(w, r, http.StatusOK, templates.Modal(h.service.view(ctx, opened, loc), loc))
}

func (h handlers) handleClose(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeFailure(w, r, loc, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", err.Error()))
		return
	}
	store, ok := h.lookupStore(r)
	if !ok {
		h.renderer.WriteFragment(w, r, http.StatusOK)
		return
	}

	returnTo := ""
	if current, open := store.Current(); open {
		returnTo = current.ReturnTo
	}
	if id := strings.TrimSpace(r.PostForm.Get(templates.ModalFieldID)); id != "" {
		store.CloseModal(id)
	} else {
		store.Close()
	}

	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, httpx.SafeReturnPath(returnTo, "/"))
		return
	}
	// A close aimed at a replaced instance leaves the newer dialog on screen.
	if current, open := store.Current(); open {
		h.renderer.WriteFragment(w, r, http.StatusOK, templates.Modal(h.service.view(httpx.RequestContext(r), current, loc), loc))
		return
	}
	h.renderer.WriteFragment(w, r, http.StatusOK)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.writeFailure(w, r, loc, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", err.Error()))
		return
	}
	if h.runner == nil {
		h.writeFailure(w, r, loc, apperrors.E(apperrors.KindUnavailable, "modal runner is not configured"))
		return
	}
	form, err := workflow.DecodeForm(r.PostForm)
	if err != nil {
		h.writeFailure(w, r, loc, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", err.Error()))
		return
	}

	id := strings.TrimSpace(r.PostForm.Get(templates.ModalFieldID))
	store, _ := h.lookupStore(r)
	returnTo := "/"
	if store != nil {
		if current, open := store.Current(); open && current.ID == id {
			returnTo = current.ReturnTo
		}
	}

	ctx := httpx.RequestContext(r)
	outcome := h.runner.Submit(ctx, store, id, form)
	switch outcome.Status {
	case workflow.StatusSucceeded:
		flash.Write(w, r, flash.Success(outcome.NoticeKey), h.policy)
		httpx.WriteRedirect(w, r, returnTo)
	case workflow.StatusInvalid:
		view := h.service.view(ctx, outcome.Modal, loc)
		view.Errors = outcome.ValidationErrors
		h.renderer.WriteFragment(w, r, http.StatusBadRequest, templates.Modal(view, loc))
	case workflow.StatusBusy:
		h.renderer.WriteFragment(w, r, http.StatusConflict,
			templates.Modal(h.service.view(ctx, outcome.Modal, loc), loc),
			templates.ToastOOB(&templates.Toast{Kind: string(flash.KindInfo), Message: templates.T(loc, "notice.busy")}),
		)
	case workflow.StatusFailed:
		message := templates.T(loc, outcome.NoticeKey)
		view := h.service.view(ctx, outcome.Modal, loc)
		view.Notice = message
		status := apperrors.HTTPStatus(apperrors.FromAPI(outcome.Err, outcome.NoticeKey))
		h.renderer.WriteFragment(w, r, status,
			templates.Modal(view, loc),
			templates.ToastOOB(&templates.Toast{Kind: string(flash.KindError), Message: message}),
		)
	default:
		// The dialog was closed or replaced before this submit arrived.
		var current templ.Component
		if store != nil {
			if open, ok := store.Current(); ok {
				current = templates.Modal(h.service.view(ctx, open, loc), loc)
			}
		}
		h.renderer.WriteFragment(w, r, http.StatusConflict,
			current,
			templates.ToastOOB(&templates.Toast{Kind: string(flash.KindInfo), Message: templates.T(loc, "notice.modal_expired")}),
		)
	}
}

func (h handlers) lookupStore(r *http.Request) (*workflow.Store, bool) {
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		return nil, false
	}
	return h.sessions.Lookup(sessionID)
}

// writeFailure reports an error without opening a dialog. HTMX callers get
// an empty modal root and an error toast.
func (h handlers) writeFailure(w http.ResponseWriter, r *http.Request, loc templates.Localizer, err error) {
	if !httpx.IsHTMXRequest(r) {
		h.renderer.WriteError(w, r, err)
		return
	}
	log.Printf("modal request failed path=%s err=%v", r.URL.Path, err)
	h.renderer.WriteFragment(w, r, apperrors.HTTPStatus(err),
		templates.ToastOOB(&templates.Toast{Kind: string(flash.KindError), Message: pagerender.PublicMessage(loc, err)}),
	)
}
