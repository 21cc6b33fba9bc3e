package employees

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type fakeGateway struct {
	employees      []domain.Employee
	assignments    map[domain.ID][]domain.Assignment
	listErr        error
	getErr         error
	assignmentsErr error
}

func (f fakeGateway) ListEmployees(context.Context) ([]domain.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

func (f fakeGateway) GetEmployee(_ context.Context, id domain.ID) (domain.Employee, error) {
	if f.getErr != nil {
		return domain.Employee{}, f.getErr
	}
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, &api.Error{Op: "GetEmployee", Status: http.StatusNotFound}
}

func (f fakeGateway) ListEmployeeAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	return f.assignments[id], nil
}
