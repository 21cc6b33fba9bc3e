package workflow

import (
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// EmployeeCreatePayload builds the POST /employees body from a form.
func EmployeeCreatePayload(f Form) domain.CreateEmployeeInput {
	f = f.trimmed()
	return domain.CreateEmployeeInput{
		Name:      f.Name,
		Email:     f.Email,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Positions: domain.SplitList(f.Positions),
		TechStack: domain.SplitList(f.TechStack),
	}
}

// EmployeeUpdatePayload builds the PUT /employees/{id} body from a form.
func EmployeeUpdatePayload(f Form) domain.UpdateEmployeeInput {
	f = f.trimmed()
	return domain.UpdateEmployeeInput{
		Name:      f.Name,
		Email:     f.Email,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Positions: domain.SplitList(f.Positions),
		TechStack: domain.SplitList(f.TechStack),
	}
}

// ProjectCreatePayload builds the POST /projects body from a form.
func ProjectCreatePayload(f Form) domain.CreateProjectInput {
	f = f.trimmed()
	return domain.CreateProjectInput{
		Name:        f.Name,
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		TechStack:   domain.SplitList(f.TechStack),
	}
}

// ProjectUpdatePayload builds the PUT /projects/{id} body from a form.
func ProjectUpdatePayload(f Form) domain.UpdateProjectInput {
	f = f.trimmed()
	return domain.UpdateProjectInput{
		Name:        f.Name,
		Description: f.Description,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		TechStack:   domain.SplitList(f.TechStack),
	}
}

// AssignmentPayload builds the POST /assignments body. The assigned date is
// the submission time in UTC.
func AssignmentPayload(employeeID, projectID domain.ID, f Form, now time.Time) domain.AssignmentInput {
	f = f.trimmed()
	return domain.AssignmentInput{
		EmployeeID:   employeeID,
		ProjectID:    projectID,
		Role:         f.Role,
		AssignedDate: now.UTC().Format(time.RFC3339),
	}
}

// UnassignPayload builds the DELETE /assignments body.
func UnassignPayload(a domain.Assignment) domain.UnassignInput {
	return domain.UnassignInput{EmployeeID: a.EmployeeID, ProjectID: a.ProjectID}
}
