package projects

import (
	"context"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
)

// Gateway reads project data, normally through the query cache.
type Gateway interface {
	ListProjects(context.Context) ([]domain.Project, error)
	GetProject(context.Context, domain.ID) (domain.Project, error)
	ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
}

type unavailableGateway struct{}

func (unavailableGateway) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}

func (unavailableGateway) GetProject(context.Context, domain.ID) (domain.Project, error) {
	return domain.Project{}, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}

func (unavailableGateway) ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}
