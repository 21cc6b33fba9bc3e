package modals

import (
	"context"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
)

// Gateway loads the records a modal is opened against and the choices an
// assignment dialog offers.
type Gateway interface {
	ListEmployees(context.Context) ([]domain.Employee, error)
	GetEmployee(context.Context, domain.ID) (domain.Employee, error)
	ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
	ListProjects(context.Context) ([]domain.Project, error)
	GetProject(context.Context, domain.ID) (domain.Project, error)
	ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
}

var errGatewayUnavailable = apperrors.E(apperrors.KindUnavailable, "modal gateway is not configured")

type unavailableGateway struct{}

func (unavailableGateway) ListEmployees(context.Context) ([]domain.Employee, error) {
	return nil, errGatewayUnavailable
}

func (unavailableGateway) GetEmployee(context.Context, domain.ID) (domain.Employee, error) {
	return domain.Employee{}, errGatewayUnavailable
}

func (unavailableGateway) ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return nil, errGatewayUnavailable
}

func (unavailableGateway) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, errGatewayUnavailable
}

func (unavailableGateway) GetProject(context.Context, domain.ID) (domain.Project, error) {
	return domain.Project{}, errGatewayUnavailable
}

func (unavailableGateway) ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return nil, errGatewayUnavailable
}
