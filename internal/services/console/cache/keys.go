package cache

import (
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Scope groups cache keys that describe the same resource shape.
type Scope string

const (
	ScopeEmployees        Scope = "employees"
	ScopeEmployeeDetail   Scope = "employee_detail"
	ScopeEmployeeProjects Scope = "employee_projects"
	ScopeProjects         Scope = "projects"
	ScopeProjectDetail    Scope = "project_detail"
	ScopeProjectEmployees Scope = "project_employees"
)

// Key identifies one cached backend read. Lists carry no ID.
type Key struct {
	Scope Scope
	ID    domain.ID
}

// EmployeesList is the key of GET /employees.
func EmployeesList() Key { return Key{Scope: ScopeEmployees} }

// EmployeeDetail is the key of GET /employees/{id}.
func EmployeeDetail(id domain.ID) Key { return Key{Scope: ScopeEmployeeDetail, ID: id} }

// EmployeeProjects is the key of GET /employees/{id}/projects.
func EmployeeProjects(id domain.ID) Key { return Key{Scope: ScopeEmployeeProjects, ID: id} }

// ProjectsList is the key of GET /projects.
func ProjectsList() Key { return Key{Scope: ScopeProjects} }

// ProjectDetail is the key of GET /projects/{id}.
func ProjectDetail(id domain.ID) Key { return Key{Scope: ScopeProjectDetail, ID: id} }

// ProjectEmployees is the key of GET /projects/{id}/employees.
func ProjectEmployees(id domain.ID) Key { return Key{Scope: ScopeProjectEmployees, ID: id} }

// String renders the storage key, mirroring the backend path it caches.
func (k Key) String() string {
	id := strings.TrimSpace(k.ID.String())
	switch k.Scope {
	case ScopeEmployees:
		return "employees"
	case ScopeEmployeeDetail:
		return "employees/" + id
	case ScopeEmployeeProjects:
		return "employees/" + id + "/projects"
	case ScopeProjects:
		return "projects"
	case ScopeProjectDetail:
		return "projects/" + id
	case ScopeProjectEmployees:
		return "projects/" + id + "/employees"
	default:
		if id == "" {
			return string(k.Scope)
		}
		return string(k.Scope) + "/" + id
	}
}

// Valid reports whether the key names a known scope with the id it needs.
func (k Key) Valid() bool {
	switch k.Scope {
	case ScopeEmployees, ScopeProjects:
		return true
	case ScopeEmployeeDetail, ScopeEmployeeProjects, ScopeProjectDetail, ScopeProjectEmployees:
		return !k.ID.IsZero()
	default:
		return false
	}
}
