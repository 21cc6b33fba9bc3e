package employees

import (
	"context"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
)

// Gateway reads employee data, normally through the query cache.
type Gateway interface {
	ListEmployees(context.Context) ([]domain.Employee, error)
	GetEmployee(context.Context, domain.ID) (domain.Employee, error)
	ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
}

type unavailableGateway struct{}

func (unavailableGateway) ListEmployees(context.Context) ([]domain.Employee, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "employee service is not configured")
}

func (unavailableGateway) GetEmployee(context.Context, domain.ID) (domain.Employee, error) {
	return domain.Employee{}, apperrors.E(apperrors.KindUnavailable, "employee service is not configured")
}

func (unavailableGateway) ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "employee service is not configured")
}
