package templates

import "github.com/louisbranch/staffdesk/internal/services/console/workflow"

// Form field names posted by modal open buttons and dialogs.
const (
	ModalFieldID         = "modal_id"
	ModalFieldKind       = "kind"
	ModalFieldEmployeeID = "employee_id"
	ModalFieldProjectID  = "project_id"
	ModalFieldReturnTo   = "return_to"
)

// Option is one entry of a select input.
type Option struct {
	Value string
	Label string
}

// ModalView is everything a dialog needs to render.
type ModalView struct {
	ID     string
	Kind   workflow.Kind
	Form   workflow.Form
	Errors workflow.FieldErrors
	Busy   bool
	// Notice is an error shown inside the dialog after a failed submit.
	Notice string
	// Subject names the entity a confirmation refers to; Other names the
	// opposite side of an assignment.
	Subject      string
	Other        string
	Options      []Option
	OptionsError string
}

func (v ModalView) key(suffix string) string {
	return "modal." + string(v.Kind) + "." + suffix
}

func (v ModalView) closeVals() string {
	return hxVals(map[string]string{ModalFieldID: v.ID})
}

// creating reports whether the dialog creates a record, which makes the
// identifying fields required.
func (v ModalView) creating() bool {
	return v.Kind == workflow.KindCreateEmployee || v.Kind == workflow.KindCreateProject
}

func (v ModalView) submitClass() string {
	if v.Kind == workflow.KindDeleteEmployee || v.Kind == workflow.KindDeleteProject {
		return "danger"
	}
	return "primary"
}

func (v ModalView) targetLabelKey() string {
	if v.Kind == workflow.KindAssignProjectToEmployee {
		return "field.employee"
	}
	return "field.project"
}
