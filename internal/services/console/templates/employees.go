package templates

import (
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

// EmployeeListID is the DOM id of the employees list region.
const EmployeeListID = "employee-list"

// EmployeeListView is the data behind the employees list region.
type EmployeeListView struct {
	State        ViewState
	Employees    []domain.Employee
	ErrorMessage string
	OrderBy      string
}

func createEmployeeVals(orderBy string) map[string]string {
	return map[string]string{
		ModalFieldKind:     string(workflow.KindCreateEmployee),
		ModalFieldReturnTo: routepath.WithOrder(routepath.Employees, orderBy),
	}
}

func employeeVals(kind workflow.Kind, id domain.ID, returnTo string) map[string]string {
	return map[string]string{
		ModalFieldKind:       string(kind),
		ModalFieldEmployeeID: id.String(),
		ModalFieldReturnTo:   returnTo,
	}
}

func employeeStatus(e domain.Employee, loc Localizer) string {
	if e.Employed() {
		return T(loc, "employees.status.active")
	}
	return T(loc, "employees.status.former")
}
