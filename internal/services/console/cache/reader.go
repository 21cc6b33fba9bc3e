package cache

import (
	"context"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Backend is the read side of the staff API.
type Backend interface {
	ListEmployees(context.Context) ([]domain.Employee, error)
	GetEmployee(context.Context, domain.ID) (domain.Employee, error)
	ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
	ListProjects(context.Context) ([]domain.Project, error)
	GetProject(context.Context, domain.ID) (domain.Project, error)
	ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error)
}

// Reader serves backend reads through the cache.
type Reader struct {
	backend Backend
	cache   *Cache
}

// NewReader wraps backend with c. A nil c reads straight through.
func NewReader(backend Backend, c *Cache) Reader {
	return Reader{backend: backend, cache: c}
}

func (r Reader) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return Fetch(ctx, r.cache, EmployeesList(), r.backend.ListEmployees)
}

func (r Reader) GetEmployee(ctx context.Context, id domain.ID) (domain.Employee, error) {
	return Fetch(ctx, r.cache, EmployeeDetail(id), func(ctx context.Context) (domain.Employee, error) {
		return r.backend.GetEmployee(ctx, id)
	})
}

func (r Reader) ListEmployeeAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	return Fetch(ctx, r.cache, EmployeeProjects(id), func(ctx context.Context) ([]domain.Assignment, error) {
		return r.backend.ListEmployeeAssignments(ctx, id)
	})
}

func (r Reader) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return Fetch(ctx, r.cache, ProjectsList(), r.backend.ListProjects)
}

func (r Reader) GetProject(ctx context.Context, id domain.ID) (domain.Project, error) {
	return Fetch(ctx, r.cache, ProjectDetail(id), func(ctx context.Context) (domain.Project, error) {
		return r.backend.GetProject(ctx, id)
	})
}

func (r Reader) ListProjectAssignments(ctx context.Context, id domain.ID) ([]domain.Assignment, error) {
	return Fetch(ctx, r.cache, ProjectEmployees(id), func(ctx context.Context) ([]domain.Assignment, error) {
		return r.backend.ListProjectAssignments(ctx, id)
	})
}
