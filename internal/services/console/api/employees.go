package api

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// ListEmployees returns every employee.
func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var wire []wireEmployee
	if err := c.fetch(ctx, "ListEmployees", http.MethodGet, "/employees", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetEmployee returns one employee.
func (c *Client) GetEmployee(ctx context.Context, id domain.ID) (domain.Employee, error) {
	if id.IsZero() {
		return domain.Employee{}, &Error{Op: "GetEmployee", Message: "employee id is required"}
	}
	var wire wireEmployee
	if err := c.fetch(ctx, "GetEmployee", http.MethodGet, resourcePath("employees", id), nil, &wire); err != nil {
		return domain.Employee{}, err
	}
	employee := wire.toDomain()
	if employee.ID.IsZero() {
		employee.ID = id
	}
	return employee, nil
}

// CreateEmployee creates an employee and returns the stored record.
func (c *Client) CreateEmployee(ctx context.Context, in domain.CreateEmployeeInput) (domain.Employee, error) {
	in.Positions = domain.NonNil(in.Positions)
	in.TechStack = domain.NonNil(in.TechStack)
	var wire wireEmployee
	if err := c.fetch(ctx, "CreateEmployee", http.MethodPost, "/employees", in, &wire); err != nil {
		return domain.Employee{}, err
	}
	return wire.toDomain(), nil
}

// UpdateEmployee replaces the editable fields of an employee.
func (c *Client) UpdateEmployee(ctx context.Context, id domain.ID, in domain.UpdateEmployeeInput) (domain.Employee, error) {
	if id.IsZero() {
		return domain.Employee{}, &Error{Op: "UpdateEmployee", Message: "employee id is required"}
	}
	in.Positions = domain.NonNil(in.Positions)
	in.TechStack = domain.NonNil(in.TechStack)
	var wire wireEmployee
	if err := c.fetch(ctx, "UpdateEmployee", http.MethodPut, resourcePath("employees", id), in, &wire); err != nil {
		return domain.Employee{}, err
	}
	employee := wire.toDomain()
	if employee.ID.IsZero() {
		employee.ID = id
	}
	return employee, nil
}

// DeleteEmployee removes an employee.
func (c *Client) DeleteEmployee(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return &Error{Op: "DeleteEmployee", Message: "employee id is required"}
	}
	_, err := c.call(ctx, "DeleteEmployee", http.MethodDelete, resourcePath("employees", id), nil)
	return err
}

// ListEmployeeAssignments returns the projects an employee is assigned to.
func (c *Client) ListEmployeeAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	if id.IsZero() {
		return nil, &Error{Op: "ListEmployeeAssignments", Message: "employee id is required"}
	}
	var wire []wireAssignment
	if err := c.fetch(ctx, "ListEmployeeAssignments", http.MethodGet, resourcePath("employees", id, "projects"), nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Assignment, 0, len(wire))
	for _, w := range wire {
		a := w.toDomain()
		if a.EmployeeID.IsZero() {
			a.EmployeeID = id
		}
		out = append(out, a)
	}
	return out, nil
}
