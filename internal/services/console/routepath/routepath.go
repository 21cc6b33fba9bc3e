// Package routepath stores canonical HTTP paths for console modules.
package routepath

import (
	"net/url"
	"strings"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

const (
	Root                    = "/"
	Health                  = "/up"
	Employees               = "/employees"
	EmployeesPrefix         = "/employees/"
	EmployeePattern         = EmployeesPrefix + "{employeeID}"
	EmployeeProjectsPattern = EmployeesPrefix + "{employeeID}/projects"
	Projects                = "/projects"
	ProjectsPrefix          = "/projects/"
	ProjectPattern          = ProjectsPrefix + "{projectID}"
	ProjectEmployeesPattern = ProjectsPrefix + "{projectID}/employees"
	ModalPrefix             = "/modal/"
	ModalOpen               = "/modal/open"
	ModalClose              = "/modal/close"
	ModalSubmit             = "/modal/submit"

	// SectionParam selects a lazily loaded fragment of a page.
	SectionParam = "section"
	// SectionList is the list body of a collection page.
	SectionList = "list"
	// SectionAssignments is the assignment list of a detail page.
	SectionAssignments = "assignments"
	// OrderByParam carries an AIP-132 ordering for list pages.
	OrderByParam = "order_by"
)

// Employee returns the employee detail route.
func Employee(id domain.ID) string {
	return EmployeesPrefix + escapeSegment(id.String())
}

// EmployeeAssignments returns the lazy assignment fragment of an employee.
func EmployeeAssignments(id domain.ID) string {
	return withSection(Employee(id), SectionAssignments)
}

// EmployeesList returns the lazy list fragment with an optional ordering.
func EmployeesList(orderBy string) string {
	return listURL(Employees, orderBy)
}

// Project returns the project detail route.
func Project(id domain.ID) string {
	return ProjectsPrefix + escapeSegment(id.String())
}

// ProjectAssignments returns the lazy team fragment of a project.
func ProjectAssignments(id domain.ID) string {
	return withSection(Project(id), SectionAssignments)
}

// ProjectsList returns the lazy list fragment with an optional ordering.
func ProjectsList(orderBy string) string {
	return listURL(Projects, orderBy)
}

// WithOrder returns a collection page URL sorted by orderBy.
func WithOrder(base, orderBy string) string {
	orderBy = strings.TrimSpace(orderBy)
	if orderBy == "" {
		return base
	}
	return base + "?" + url.Values{OrderByParam: {orderBy}}.Encode()
}

func listURL(base, orderBy string) string {
	values := url.Values{SectionParam: {SectionList}}
	if orderBy = strings.TrimSpace(orderBy); orderBy != "" {
		values.Set(OrderByParam, orderBy)
	}
	return base + "?" + values.Encode()
}

func withSection(base, section string) string {
	return base + "?" + url.Values{SectionParam: {section}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
