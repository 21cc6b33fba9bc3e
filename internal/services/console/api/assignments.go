package api

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Assign links an employee to a project.
func (c *Client) Assign(ctx context.Context, in domain.AssignmentInput) error {
	if in.EmployeeID.IsZero() || in.ProjectID.IsZero() {
		return &Error{Op: "Assign", Message: "employee and project ids are required"}
	}
	_, err := c.call(ctx, "Assign", http.MethodPost, "/assignments", in)
	return err
}

// Unassign removes the link between an employee and a project.
func (c *Client) Unassign(ctx context.Context, in domain.UnassignInput) error {
	if in.EmployeeID.IsZero() || in.ProjectID.IsZero() {
		return &Error{Op: "Unassign", Message: "employee and project ids are required"}
	}
	_, err := c.call(ctx, "Unassign", http.MethodDelete, "/assignments", in)
	return err
}
