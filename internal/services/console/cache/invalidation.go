package cache

import (
	"context"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Target is one invalidation: a single key, or every key of a scope.
type Target struct {
	Scope      Scope
	ID         domain.ID
	WholeScope bool
}

// Key returns the single key the target names.
func (t Target) Key() Key { return Key{Scope: t.Scope, ID: t.ID} }

func exact(k Key) Target { return Target{Scope: k.Scope, ID: k.ID} }

func wholeScope(scope Scope) Target { return Target{Scope: scope, WholeScope: true} }

// MutationKind names a successful backend write.
type MutationKind string

const (
	MutationCreateEmployee MutationKind = "create_employee"
	MutationUpdateEmployee MutationKind = "update_employee"
	MutationDeleteEmployee MutationKind = "delete_employee"
	MutationCreateProject  MutationKind = "create_project"
	MutationUpdateProject  MutationKind = "update_project"
	MutationDeleteProject  MutationKind = "delete_project"
	MutationAssign         MutationKind = "assign"
	MutationUnassign       MutationKind = "unassign"
)

// Mutation describes a completed write for invalidation purposes.
type Mutation struct {
	Kind       MutationKind
	EmployeeID domain.ID
	ProjectID  domain.ID
	// Related lists the opposite-side ids linked to a deleted entity.
	// Nil means unknown and widens invalidation to the whole scope.
	Related []domain.ID
}

// InvalidationFor returns the keys a mutation makes stale.
func InvalidationFor(m Mutation) []Target {
	var targets []Target
	switch m.Kind {
	case MutationCreateEmployee:
		targets = append(targets, exact(EmployeesList()))
	case MutationUpdateEmployee:
		targets = append(targets,
			exact(EmployeesList()),
			exact(EmployeeDetail(m.EmployeeID)),
			exact(EmployeeProjects(m.EmployeeID)),
		)
	case MutationDeleteEmployee:
		targets = append(targets,
			exact(EmployeesList()),
			exact(EmployeeDetail(m.EmployeeID)),
			exact(EmployeeProjects(m.EmployeeID)),
		)
		targets = append(targets, relatedTargets(ScopeProjectEmployees, m.Related, ProjectEmployees)...)
	case MutationCreateProject:
		targets = append(targets, exact(ProjectsList()))
	case MutationUpdateProject:
		targets = append(targets,
			exact(ProjectsList()),
			exact(ProjectDetail(m.ProjectID)),
			exact(ProjectEmployees(m.ProjectID)),
		)
	case MutationDeleteProject:
		targets = append(targets,
			exact(ProjectsList()),
			exact(ProjectDetail(m.ProjectID)),
			exact(ProjectEmployees(m.ProjectID)),
		)
		targets = append(targets, relatedTargets(ScopeEmployeeProjects, m.Related, EmployeeProjects)...)
	case MutationAssign, MutationUnassign:
		targets = append(targets,
			exact(EmployeesList()),
			exact(ProjectsList()),
			exact(EmployeeDetail(m.EmployeeID)),
			exact(EmployeeProjects(m.EmployeeID)),
			exact(ProjectDetail(m.ProjectID)),
			exact(ProjectEmployees(m.ProjectID)),
		)
	}
	return dedupe(targets)
}

func relatedTargets(scope Scope, related []domain.ID, key func(domain.ID) Key) []Target {
	if related == nil {
		return []Target{wholeScope(scope)}
	}
	out := make([]Target, 0, len(related))
	for _, id := range related {
		if id.IsZero() {
			continue
		}
		out = append(out, exact(key(id)))
	}
	return out
}

func dedupe(targets []Target) []Target {
	seen := make(map[Target]struct{}, len(targets))
	out := targets[:0]
	for _, t := range targets {
		if !t.WholeScope && !t.Key().Valid() {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// InvalidateMutation applies the invalidation set of m.
//
// For deletes with unknown Related ids, a fresh cached assignment list of the
// deleted entity is consulted first so only the lists it appeared in are
// marked stale.
func (c *Cache) InvalidateMutation(ctx context.Context, m Mutation) error {
	if m.Related == nil {
		switch m.Kind {
		case MutationDeleteEmployee:
			if assignments, ok := Peek[[]domain.Assignment](ctx, c, EmployeeProjects(m.EmployeeID)); ok {
				m.Related = projectIDs(assignments)
			}
		case MutationDeleteProject:
			if assignments, ok := Peek[[]domain.Assignment](ctx, c, ProjectEmployees(m.ProjectID)); ok {
				m.Related = employeeIDs(assignments)
			}
		}
	}
	return c.Invalidate(ctx, InvalidationFor(m)...)
}

func projectIDs(assignments []domain.Assignment) []domain.ID {
	out := make([]domain.ID, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.ProjectID)
	}
	return out
}

func employeeIDs(assignments []domain.Assignment) []domain.ID {
	out := make([]domain.ID, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.EmployeeID)
	}
	return out
}
