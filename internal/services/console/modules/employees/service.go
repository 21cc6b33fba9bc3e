package employees

import (
	"context"

	"go.einride.tech/aip/ordering"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/listorder"
)

var sortKeys = map[string]func(domain.Employee) string{
	"name":       func(e domain.Employee) string { return e.Name },
	"start_date": func(e domain.Employee) string { return domain.FormDate(e.StartDate) },
}

type service struct {
	gateway Gateway
}

func newService(g Gateway) service {
	return service{gateway: g}
}

func (s service) listEmployees(ctx context.Context, orderBy ordering.OrderBy) ([]domain.Employee, error) {
	items, err := s.gateway.ListEmployees(ctx)
	if err != nil {
		return nil, apperrors.Classify(err, "employees.error", "employees.error")
	}
	out := append([]domain.Employee(nil), items...)
	listorder.Sort(out, orderBy, sortKeys)
	return out, nil
}

func (s service) loadEmployee(ctx context.Context, id domain.ID) (domain.Employee, error) {
	if id.IsZero() {
		return domain.Employee{}, apperrors.EK(apperrors.KindNotFound, "employee.not_found", "employee id is required")
	}
	e, err := s.gateway.GetEmployee(ctx, id)
	if err != nil {
		return domain.Employee{}, apperrors.Classify(err, "employee.error", "employee.not_found")
	}
	return e, nil
}

func (s service) listAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	items, err := s.gateway.ListEmployeeAssignments(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err, "employee.projects_error", "employee.projects_error")
	}
	return items, nil
}

