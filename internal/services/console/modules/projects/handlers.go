package projects

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/httpx"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/listorder"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
)

type handlers struct {
	service  service
	renderer pagerender.Renderer
}

func newHandlers(s service, r pagerender.Renderer) handlers {
	return handlers{service: s, renderer: r}
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET "+routepath.Projects, h.handleList)
	mux.HandleFunc("GET "+routepath.ProjectPattern, h.handleDetail)
	mux.HandleFunc("GET "+routepath.ProjectEmployeesPattern, h.handleEmployeesRedirect)
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	rawOrder := r.URL.Query().Get(routepath.OrderByParam)
	orderBy, err := listorder.Parse(rawOrder)
	if err != nil {
		h.renderer.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", err.Error()))
		return
	}

	if r.URL.Query().Get(routepath.SectionParam) != routepath.SectionList {
		h.renderer.WritePage(w, r, pagerender.Page{
			Title:    templates.T(loc, "projects.heading"),
			Nav:      templates.NavProjects,
			Fragment: templates.ProjectsPage(rawOrder, loc),
		})
		return
	}

	view := templates.ProjectListView{State: templates.StateReady, OrderBy: rawOrder}
	status := http.StatusOK
	items, err := h.service.listProjects(requestContext(r), orderBy)
	if err != nil {
		view.State = templates.StateError
		view.ErrorMessage = pagerender.PublicMessage(loc, err)
		status = apperrors.HTTPStatus(err)
	}
	view.Projects = items
	h.renderer.WriteFragment(w, r, status, templates.ProjectList(view, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	id := domain.ID(r.PathValue("projectID"))
	ctx := requestContext(r)

	if r.URL.Query().Get(routepath.SectionParam) == routepath.SectionAssignments {
		view := templates.AssignmentsView{Side: templates.ProjectSide, OwnerID: id, State: templates.StateReady}
		status := http.StatusOK
		items, err := h.service.listAssignments(ctx, id)
		if err != nil {
			view.State = templates.StateError
			view.ErrorMessage = pagerender.PublicMessage(loc, err)
			status = apperrors.HTTPStatus(err)
		}
		view.Assignments = items
		h.renderer.WriteFragment(w, r, status, templates.Assignments(view, loc))
		return
	}

	project, err := h.service.loadProject(ctx, id)
	if err != nil {
		// Deleted projects land here after a stale link.
		h.renderer.WriteError(w, r, err)
		return
	}
	h.renderer.WritePage(w, r, pagerender.Page{
		Title:    project.Name,
		Nav:      templates.NavProjects,
		Fragment: templates.ProjectDetail(project, loc),
	})
}

func (h handlers) handleEmployeesRedirect(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Project(domain.ID(r.PathValue("projectID"))))
}

func requestContext(r *http.Request) context.Context {
	return httpx.RequestContext(r)
}
