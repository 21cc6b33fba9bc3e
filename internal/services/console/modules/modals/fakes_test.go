package modals

import (
	"context"
	"net/http"
	"sync"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type fakeGateway struct {
	employees   []domain.Employee
	projects    []domain.Project
	assignments []domain.Assignment
	listErr     error
}

func (f fakeGateway) ListEmployees(context.Context) ([]domain.Employee, error) {
	return f.employees, f.listErr
}

func (f fakeGateway) GetEmployee(_ context.Context, id domain.ID) (domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, &api.Error{Op: "GetEmployee", Status: http.StatusNotFound}
}

func (f fakeGateway) ListEmployeeAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range f.assignments {
		if a.EmployeeID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeGateway) ListProjects(context.Context) ([]domain.Project, error) {
	return f.projects, f.listErr
}

func (f fakeGateway) GetProject(_ context.Context, id domain.ID) (domain.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, &api.Error{Op: "GetProject", Status: http.StatusNotFound}
}

func (f fakeGateway) ListProjectAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range f.assignments {
		if a.ProjectID == id {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeMutator struct {
	mu         sync.Mutex
	calls      []string
	fail       error
	assigned   []domain.AssignmentInput
	unassigned []domain.UnassignInput
}

func (f *fakeMutator) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.fail
}

func (f *fakeMutator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeMutator) CreateEmployee(context.Context, domain.CreateEmployeeInput) (domain.Employee, error) {
	return domain.Employee{ID: "new"}, f.record("CreateEmployee")
}

func (f *fakeMutator) UpdateEmployee(_ context.Context, id domain.ID, _ domain.UpdateEmployeeInput) (domain.Employee, error) {
	return domain.Employee{ID: id}, f.record("UpdateEmployee")
}

func (f *fakeMutator) DeleteEmployee(context.Context, domain.ID) error {
	return f.record("DeleteEmployee")
}

func (f *fakeMutator) CreateProject(context.Context, domain.CreateProjectInput) (domain.Project, error) {
	return domain.Project{ID: "new"}, f.record("CreateProject")
}

func (f *fakeMutator) UpdateProject(_ context.Context, id domain.ID, _ domain.UpdateProjectInput) (domain.Project, error) {
	return domain.Project{ID: id}, f.record("UpdateProject")
}

func (f *fakeMutator) DeleteProject(context.Context, domain.ID) error {
	return f.record("DeleteProject")
}

func (f *fakeMutator) Assign(_ context.Context, in domain.AssignmentInput) error {
	f.mu.Lock()
	f.assigned = append(f.assigned, in)
	f.mu.Unlock()
	return f.record("Assign")
}

func (f *fakeMutator) Unassign(_ context.Context, in domain.UnassignInput) error {
	f.mu.Lock()
	f.unassigned = append(f.unassigned, in)
	f.mu.Unlock()
	return f.record("Unassign")
}
