package employees

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
	mux.HandleFunc("GET "+routepath.Employees, h.handleList)
	mux.HandleFunc("GET "+routepath.EmployeePattern, h.handleDetail)
	mux.HandleFunc("GET "+routepath.EmployeeProjectsPattern, h.handleProjectsRedirect)
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
			Title:    templates.T(loc, "employees.heading"),
			Nav:      templates.NavEmployees,
			Fragment: templates.EmployeesPage(rawOrder, loc),
		})
		return
	}

	view := templates.EmployeeListView{State: templates.StateReady, OrderBy: rawOrder}
	status := http.StatusOK
	items, err := h.service.listEmployees(requestContext(r), orderBy)
	if err != nil {
		view.State = templates.StateError
		view.ErrorMessage = pagerender.PublicMessage(loc, err)
		status = apperrors.HTTPStatus(err)
	}
	view.Employees = items
	h.renderer.WriteFragment(w, r, status, templates.EmployeeList(view, loc))
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.renderer.Localizer(w, r)
	id := domain.ID(r.PathValue("employeeID"))
	ctx := requestContext(r)

	if r.URL.Query().Get(routepath.SectionParam) == routepath.SectionAssignments {
		view := templates.AssignmentsView{Side: templates.EmployeeSide, OwnerID: id, State: templates.StateReady}
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

	employee, err := h.service.loadEmployee(ctx, id)
	if err != nil {
		h.renderer.WriteError(w, r, err)
		return
	}
	h.renderer.WritePage(w, r, pagerender.Page{
		Title:    employee.Name,
		Nav:      templates.NavEmployees,
		Fragment: templates.EmployeeDetail(employee, loc),
	})
}

func (h handlers) handleProjectsRedirect(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Employee(domain.ID(r.PathValue("employeeID"))))
}

func requestContext(r *http.Request) context.Context {
	return httpx.RequestContext(r)
}
