package projects

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type fakeGateway struct {
	projects       []domain.Project
	assignments    map[domain.ID][]domain.Assignment
	listErr        error
	getErr         error
	assignmentsErr error
}

func (f fakeGateway) ListProjects(context.Context) ([]domain.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f fakeGateway) GetProject(_ context.Context, id domain.ID) (domain.Project, error) {
	if f.getErr != nil {
		return domain.Project{}, f.getErr
	}
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, &api.Error{Op: "GetProject", Status: http.StatusNotFound}
}

func (f fakeGateway) ListProjectAssignments(_ context.Context, id domain.ID) ([]domain.Assignment, error) {
	if f.assignmentsErr != nil {
		return nil, f.assignmentsErr
	}
	return f.assignments[id], nil
}
