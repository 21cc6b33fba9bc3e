package modals

import (
	"context"
	"sort"
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

type service struct {
	gateway Gateway
}

// openTarget names the records a modal request refers to.
type openTarget struct {
	kind       workflow.Kind
	employeeID domain.ID
	projectID  domain.ID
}

// loadRequest snapshots the records the request is built from. Later edits
// to the backend do not change an open modal.
func (s service) loadRequest(ctx context.Context, target openTarget) (workflow.Request, error) {
	switch target.kind {
	case workflow.KindCreateEmployee:
		return workflow.CreateEmployee{}, nil
	case workflow.KindCreateProject:
		return workflow.CreateProject{}, nil
	case workflow.KindUpdateEmployee, workflow.KindDeleteEmployee, workflow.KindAssignEmployeeToProject:
		e, err := s.employee(ctx, target.employeeID)
		if err != nil {
			return nil, err
		}
		switch target.kind {
		case workflow.KindUpdateEmployee:
			return workflow.UpdateEmployee{Employee: e}, nil
		case workflow.KindDeleteEmployee:
			return workflow.DeleteEmployee{Employee: e}, nil
		default:
			return workflow.AssignEmployeeToProject{Employee: e}, nil
		}
	case workflow.KindUpdateProject, workflow.KindDeleteProject, workflow.KindAssignProjectToEmployee:
		p, err := s.project(ctx, target.projectID)
		if err != nil {
			return nil, err
		}
		switch target.kind {
		case workflow.KindUpdateProject:
			return workflow.UpdateProject{Project: p}, nil
		case workflow.KindDeleteProject:
			return workflow.DeleteProject{Project: p}, nil
		default:
			return workflow.AssignProjectToEmployee{Project: p}, nil
		}
	case workflow.KindUnassignEmployee:
		e, err := s.employee(ctx, target.employeeID)
		if err != nil {
			return nil, err
		}
		if target.projectID.IsZero() {
			return nil, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "project id is required")
		}
		items, err := s.gateway.ListEmployeeAssignments(ctx, e.ID)
		a := findAssignment(items, err, e.ID, target.projectID)
		if a.EmployeeName == "" {
			a.EmployeeName = e.Name
		}
		return workflow.UnassignEmployee{Employee: e, Assignment: a}, nil
	case workflow.KindUnassignProject:
		p, err := s.project(ctx, target.projectID)
		if err != nil {
			return nil, err
		}
		if target.employeeID.IsZero() {
			return nil, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "employee id is required")
		}
		items, err := s.gateway.ListProjectAssignments(ctx, p.ID)
		a := findAssignment(items, err, target.employeeID, p.ID)
		if a.ProjectName == "" {
			a.ProjectName = p.Name
		}
		return workflow.UnassignProject{Project: p, Assignment: a}, nil
	default:
		return nil, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "unknown modal kind")
	}
}

// findAssignment picks the listed assignment for the pair. A failed or
// incomplete listing still yields a usable key.
func findAssignment(items []domain.Assignment, err error, employeeID, projectID domain.ID) domain.Assignment {
	if err == nil {
		for _, a := range items {
			if (a.EmployeeID.IsZero() || a.EmployeeID == employeeID) && (a.ProjectID.IsZero() || a.ProjectID == projectID) {
				a.EmployeeID, a.ProjectID = employeeID, projectID
				return a
			}
		}
	}
	return domain.Assignment{EmployeeID: employeeID, ProjectID: projectID}
}

func (s service) employee(ctx context.Context, id domain.ID) (domain.Employee, error) {
	if id.IsZero() {
		return domain.Employee{}, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "employee id is required")
	}
	e, err := s.gateway.GetEmployee(ctx, id)
	if err != nil {
		return domain.Employee{}, apperrors.Classify(err, "employee.error", "employee.not_found")
	}
	return e, nil
}

func (s service) project(ctx context.Context, id domain.ID) (domain.Project, error) {
	if id.IsZero() {
		return domain.Project{}, apperrors.EK(apperrors.KindInvalidInput, "error.invalid_request", "project id is required")
	}
	p, err := s.gateway.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, apperrors.Classify(err, "project.error", "project.not_found")
	}
	return p, nil
}

// view builds the dialog for m. Assignment dialogs load their choices on
// every render so a reopened page sees current records.
func (s service) view(ctx context.Context, m workflow.Modal, loc templates.Localizer) templates.ModalView {
	view := templates.ModalView{
		ID:   m.ID,
		Kind: m.Request.Kind(),
		Form: m.Form,
		Busy: m.Busy,
	}
	switch q := m.Request.(type) {
	case workflow.DeleteEmployee:
		view.Subject = q.Employee.Name
	case workflow.DeleteProject:
		view.Subject = q.Project.Name
	case workflow.UnassignEmployee:
		view.Subject, view.Other = q.Assignment.EmployeeLabel(), q.Assignment.ProjectLabel()
	case workflow.UnassignProject:
		view.Subject, view.Other = q.Assignment.EmployeeLabel(), q.Assignment.ProjectLabel()
	case workflow.AssignEmployeeToProject:
		view.Subject = q.Employee.Name
		projects, err := s.gateway.ListProjects(ctx)
		if err != nil {
			view.OptionsError = templates.T(loc, "modal.options_error")
			break
		}
		for _, p := range projects {
			view.Options = append(view.Options, templates.Option{Value: p.ID.String(), Label: p.Name})
		}
	case workflow.AssignProjectToEmployee:
		view.Subject = q.Project.Name
		employees, err := s.gateway.ListEmployees(ctx)
		if err != nil {
			view.OptionsError = templates.T(loc, "modal.options_error")
			break
		}
		for _, e := range employees {
			view.Options = append(view.Options, templates.Option{Value: e.ID.String(), Label: e.Name})
		}
	}
	sort.SliceStable(view.Options, func(i, j int) bool {
		return strings.ToLower(view.Options[i].Label) < strings.ToLower(view.Options[j].Label)
	})
	return view
}

// fallbackReturn is where a modal returns when the opener gave no path.
func fallbackReturn(target openTarget) string {
	switch target.kind {
	case workflow.KindCreateEmployee, workflow.KindDeleteEmployee:
		return routepath.Employees
	case workflow.KindCreateProject, workflow.KindDeleteProject:
		return routepath.Projects
	case workflow.KindUpdateEmployee, workflow.KindAssignEmployeeToProject, workflow.KindUnassignEmployee:
		return routepath.Employee(target.employeeID)
	case workflow.KindUpdateProject, workflow.KindAssignProjectToEmployee, workflow.KindUnassignProject:
		return routepath.Project(target.projectID)
	default:
		return routepath.Root
	}
}
