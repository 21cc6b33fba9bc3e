package api

import (
	"context"
	"net/http"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// ListProjects returns every project.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var wire []wireProject
	if err := c.fetch(ctx, "ListProjects", http.MethodGet, "/projects", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toDomain())
	}
	return out, nil
}

// GetProject returns one project.
func (c *Client) GetProject(ctx context.Context, id domain.ID) (domain.Project, error) {
	if id.IsZero() {
		return domain.Project{}, &Error{Op: "GetProject", Message: "project id is required"}
	}
	var wire wireProject
	if err := c.fetch(ctx, "GetProject", http.MethodGet, resourcePath("projects", id), nil, &wire); err != nil {
		return domain.Project{}, err
	}
	project := wire.toDomain()
	if project.ID.IsZero() {
		project.ID = id
	}
	return project, nil
}

// CreateProject creates a project and returns the stored record.
func (c *Client) CreateProject(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	in.TechStack = domain.NonNil(in.TechStack)
	var wire wireProject
	if err := c.fetch(ctx, "CreateProject", http.MethodPost, "/projects", in, &wire); err != nil {
		return domain.Project{}, err
	}
	return wire.toDomain(), nil
}

// UpdateProject replaces the editable fields of a project.
func (c *Client) UpdateProject(ctx context.Context, id domain.ID, in domain.UpdateProjectInput) (domain.Project, error) {
	if id.IsZero() {
		return domain.Project{}, &Error{Op: "UpdateProject", Message: "project id is required"}
	}
	in.TechStack = domain.NonNil(in.TechStack)
	var wire wireProject
	if err := c.fetch(ctx, "UpdateProject", http.MethodPut, resourcePath("projects", id), in, &wire); err != nil {
		return domain.Project{}, err
	}
	project := wire.toDomain()
	if project.ID.IsZero() {
		project.ID = id
	}
	return project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return &Error{Op: "DeleteProject", Message: "project id is required"}
	}
	_, err := c.call(ctx, "DeleteProject", http.MethodDelete, resourcePath("projects", id), nil)
	return err
}

// ListProjectAssignments returns the employees assigned to a project.
func (c *Client) ListProjectAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	if id.IsZero() {
		return nil, &Error{Op: "ListProjectAssignments", Message: "project id is required"}
	}
	var wire []wireAssignment
	if err := c.fetch(ctx, "ListProjectAssignments", http.MethodGet, resourcePath("projects", id, "employees"), nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Assignment, 0, len(wire))
	for _, w := range wire {
		a := w.toDomain()
		if a.ProjectID.IsZero() {
			a.ProjectID = id
		}
		out = append(out, a)
	}
	return out, nil
}
