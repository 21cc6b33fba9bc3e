package templates

import (
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

// AssignmentsID is the DOM id of the assignment region on detail pages.
const AssignmentsID = "assignments"

// AssignmentSide says which entity owns the detail page.
type AssignmentSide int

const (
	// EmployeeSide lists the projects of one employee.
	EmployeeSide AssignmentSide = iota
	// ProjectSide lists the employees of one project.
	ProjectSide
)

// AssignmentsView is the data behind an assignment region.
type AssignmentsView struct {
	Side         AssignmentSide
	OwnerID      domain.ID
	State        ViewState
	Assignments  []domain.Assignment
	ErrorMessage string
}

func (v AssignmentsView) src() string {
	if v.Side == ProjectSide {
		return routepath.ProjectAssignments(v.OwnerID)
	}
	return routepath.EmployeeAssignments(v.OwnerID)
}

func (v AssignmentsView) emptyKey() string {
	if v.Side == ProjectSide {
		return "project.no_employees"
	}
	return "employee.no_projects"
}

// assignmentRow is one list item, with the owner id filled in when the
// backend left that side blank.
type assignmentRow struct {
	Assignment domain.Assignment
	Label      string
	Href       string
	Vals       map[string]string
}

func (v AssignmentsView) row(a domain.Assignment) assignmentRow {
	row := assignmentRow{}
	if v.Side == ProjectSide {
		if a.ProjectID.IsZero() {
			a.ProjectID = v.OwnerID
		}
		row.Label, row.Href = a.EmployeeLabel(), routepath.Employee(a.EmployeeID)
		row.Vals = map[string]string{
			ModalFieldKind:     string(workflow.KindUnassignProject),
			ModalFieldReturnTo: routepath.Project(v.OwnerID),
		}
	} else {
		if a.EmployeeID.IsZero() {
			a.EmployeeID = v.OwnerID
		}
		row.Label, row.Href = a.ProjectLabel(), routepath.Project(a.ProjectID)
		row.Vals = map[string]string{
			ModalFieldKind:     string(workflow.KindUnassignEmployee),
			ModalFieldReturnTo: routepath.Employee(v.OwnerID),
		}
	}
	row.Vals[ModalFieldEmployeeID] = a.EmployeeID.String()
	row.Vals[ModalFieldProjectID] = a.ProjectID.String()
	row.Assignment = a
	return row
}
