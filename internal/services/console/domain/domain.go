// Package domain defines the staffing records the console renders and edits.
//
// Identifiers are opaque: storage-key prefixes used by the backend are
// stripped by the API client before values reach this package.
package domain

import "strings"

// ID identifies an employee or a project.
type ID string

// String returns the raw identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is blank.
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// Employee is a staff member record.
type Employee struct {
	ID        ID
	Name      string
	Email     string
	StartDate string
	// EndDate is empty while the employee is still employed.
	EndDate   string
	Positions []string
	TechStack []string
	CreatedAt string
	UpdatedAt string
}

// Employed reports whether the employee has no recorded end date.
func (e Employee) Employed() bool { return strings.TrimSpace(e.EndDate) == "" }

// Project is a unit of work employees are assigned to.
type Project struct {
	ID          ID
	Name        string
	Description string
	StartDate   string
	EndDate     string
	TechStack   []string
	CreatedAt   string
	UpdatedAt   string
}

// Assignment links one employee to one project with a role.
//
// Names are populated when the backend resolves them; views fall back to
// "Employee <id>" and "Project <id>" when they are empty.
type Assignment struct {
	EmployeeID   ID
	ProjectID    ID
	EmployeeName string
	ProjectName  string
	Role         string
	AssignedAt   string
}

// AssignmentKey is the uniqueness key of an assignment.
type AssignmentKey struct {
	EmployeeID ID
	ProjectID  ID
}

// Key returns the (employee, project) pair identifying the assignment.
func (a Assignment) Key() AssignmentKey {
	return AssignmentKey{EmployeeID: a.EmployeeID, ProjectID: a.ProjectID}
}

// CreateEmployeeInput is the body of POST /employees.
type CreateEmployeeInput struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date,omitempty"`
	Positions []string `json:"positions"`
	TechStack []string `json:"tech_stack"`
}

// UpdateEmployeeInput is the body of PUT /employees/{id}.
type UpdateEmployeeInput struct {
	Name      string   `json:"name,omitempty"`
	Email     string   `json:"email,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Positions []string `json:"positions"`
	TechStack []string `json:"tech_stack"`
}

// CreateProjectInput is the body of POST /projects.
type CreateProjectInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	TechStack   []string `json:"tech_stack"`
}

// UpdateProjectInput is the body of PUT /projects/{id}.
type UpdateProjectInput struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	TechStack   []string `json:"tech_stack"`
}

// AssignmentInput is the body of POST /assignments.
type AssignmentInput struct {
	EmployeeID   ID     `json:"employeeId"`
	ProjectID    ID     `json:"projectId"`
	Role         string `json:"role"`
	AssignedDate string `json:"assigned_date"`
}

// UnassignInput is the body of DELETE /assignments.
type UnassignInput struct {
	EmployeeID ID `json:"employeeId"`
	ProjectID  ID `json:"projectId"`
}

// EmployeeLabel returns the employee name or a fallback built from the id.
func (a Assignment) EmployeeLabel() string {
	if name := strings.TrimSpace(a.EmployeeName); name != "" {
		return name
	}
	return "Employee " + a.EmployeeID.String()
}

// ProjectLabel returns the project name or a fallback built from the id.
func (a Assignment) ProjectLabel() string {
	if name := strings.TrimSpace(a.ProjectName); name != "" {
		return name
	}
	return "Project " + a.ProjectID.String()
}
