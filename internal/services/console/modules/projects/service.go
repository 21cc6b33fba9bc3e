package projects

import (
	"context"

	"go.einride.tech/aip/ordering"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/listorder"
)

var sortKeys = map[string]func(domain.Project) string{
	"name":       func(p domain.Project) string { return p.Name },
	"start_date": func(p domain.Project) string { return domain.FormDate(p.StartDate) },
}

type service struct {
	gateway Gateway
}

func newService(g Gateway) service {
	return service{gateway: g}
}

func (s service) listProjects(ctx context.Context, orderBy ordering.OrderBy) ([]domain.Project, error) {
	items, err := s.gateway.ListProjects(ctx)
	if err != nil {
		return nil, apperrors.Classify(err, "projects.error", "projects.error")
	}
	out := append([]domain.Project(nil), items...)
	listorder.Sort(out, orderBy, sortKeys)
	return out, nil
}

func (s service) loadProject(ctx context.Context, id domain.ID) (domain.Project, error) {
	if id.IsZero() {
		return domain.Project{}, apperrors.EK(apperrors.KindNotFound, "project.not_found", "project id is required")
	}
	p, err := s.gateway.GetProject(ctx, id)
	if err != nil {
		return domain.Project{}, apperrors.Classify(err, "project.error", "project.not_found")
	}
	return p, nil
}

func (s service) listAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	items, err := s.gateway.ListProjectAssignments(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err, "project.employees_error", "project.employees_error")
	}
	return items, nil
}

