package templates

import (
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

// ProjectListID is the DOM id of the projects list region.
const ProjectListID = "project-list"

// ProjectListView is the data behind the projects list region.
type ProjectListView struct {
	State        ViewState
	Projects     []domain.Project
	ErrorMessage string
	OrderBy      string
}

func createProjectVals(orderBy string) map[string]string {
	return map[string]string{
		ModalFieldKind:     string(workflow.KindCreateProject),
		ModalFieldReturnTo: routepath.WithOrder(routepath.Projects, orderBy),
	}
}

func projectVals(kind workflow.Kind, id domain.ID, returnTo string) map[string]string {
	return map[string]string{
		ModalFieldKind:      string(kind),
		ModalFieldProjectID: id.String(),
		ModalFieldReturnTo:  returnTo,
	}
}

// projectDates labels projects without an end date as ongoing.
func projectDates(p domain.Project, loc Localizer) string {
	end := T(loc, "project.ongoing")
	if p.EndDate != "" {
		end = domain.FormatDate(p.EndDate)
	}
	return T(loc, "project.dates", domain.FormatDate(p.StartDate), end)
}
