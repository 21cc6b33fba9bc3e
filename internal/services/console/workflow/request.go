// Package workflow owns the modal mutation workflow: which modal is open,
// the form state it edits, and the single backend write it performs.
package workflow

import "github.com/louisbranch/staffdesk/internal/services/console/domain"

// Kind tags a modal request.
type Kind string

const (
	KindCreateEmployee          Kind = "create_employee"
	KindUpdateEmployee          Kind = "update_employee"
	KindDeleteEmployee          Kind = "delete_employee"
	KindCreateProject           Kind = "create_project"
	KindUpdateProject           Kind = "update_project"
	KindDeleteProject           Kind = "delete_project"
	KindAssignEmployeeToProject Kind = "assign_employee_to_project"
	KindAssignProjectToEmployee Kind = "assign_project_to_employee"
	KindUnassignEmployee        Kind = "unassign_employee"
	KindUnassignProject         Kind = "unassign_project"
)

// Kinds lists every modal kind.
var Kinds = []Kind{
	KindCreateEmployee,
	KindUpdateEmployee,
	KindDeleteEmployee,
	KindCreateProject,
	KindUpdateProject,
	KindDeleteProject,
	KindAssignEmployeeToProject,
	KindAssignProjectToEmployee,
	KindUnassignEmployee,
	KindUnassignProject,
}

// Request is a modal request. The concrete type carries exactly the payload
// its kind needs, so tag and payload cannot disagree.
type Request interface {
	Kind() Kind
	request()
}

// CreateEmployee opens an empty employee form.
type CreateEmployee struct{}

// UpdateEmployee edits an existing employee.
type UpdateEmployee struct{ Employee domain.Employee }

// DeleteEmployee confirms removal of an employee.
type DeleteEmployee struct{ Employee domain.Employee }

// CreateProject opens an empty project form.
type CreateProject struct{}

// UpdateProject edits an existing project.
type UpdateProject struct{ Project domain.Project }

// DeleteProject confirms removal of a project.
type DeleteProject struct{ Project domain.Project }

// AssignEmployeeToProject picks a project for a fixed employee.
type AssignEmployeeToProject struct{ Employee domain.Employee }

// AssignProjectToEmployee picks an employee for a fixed project.
type AssignProjectToEmployee struct{ Project domain.Project }

// UnassignEmployee removes an assignment seen from the employee side.
type UnassignEmployee struct {
	Employee   domain.Employee
	Assignment domain.Assignment
}

// UnassignProject removes an assignment seen from the project side.
type UnassignProject struct {
	Project    domain.Project
	Assignment domain.Assignment
}

func (CreateEmployee) Kind() Kind          { return KindCreateEmployee }
func (UpdateEmployee) Kind() Kind          { return KindUpdateEmployee }
func (DeleteEmployee) Kind() Kind          { return KindDeleteEmployee }
func (CreateProject) Kind() Kind           { return KindCreateProject }
func (UpdateProject) Kind() Kind           { return KindUpdateProject }
func (DeleteProject) Kind() Kind           { return KindDeleteProject }
func (AssignEmployeeToProject) Kind() Kind { return KindAssignEmployeeToProject }
func (AssignProjectToEmployee) Kind() Kind { return KindAssignProjectToEmployee }
func (UnassignEmployee) Kind() Kind        { return KindUnassignEmployee }
func (UnassignProject) Kind() Kind         { return KindUnassignProject }

func (CreateEmployee) request()          {}
func (UpdateEmployee) request()          {}
func (DeleteEmployee) request()          {}
func (CreateProject) request()           {}
func (UpdateProject) request()           {}
func (DeleteProject) request()           {}
func (AssignEmployeeToProject) request() {}
func (AssignProjectToEmployee) request() {}
func (UnassignEmployee) request()        {}
func (UnassignProject) request()         {}

// ParseKind validates a kind received from a form.
func ParseKind(raw string) (Kind, bool) {
	for _, kind := range Kinds {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}
