package workflow

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Form is the editable state of an open modal. List fields hold the raw
// comma-separated text the user typed.
type Form struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Description string `form:"description"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Positions   string `form:"positions"`
	TechStack   string `form:"tech_stack"`
	// TargetID is the project (or employee) picked in an assign modal.
	TargetID string `form:"target_id"`
	Role     string `form:"role"`
}

// FieldErrors maps form field names to localization keys.
type FieldErrors map[string]string

var (
	formDecoder = form.NewDecoder()
	validate    = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeForm reads a Form from submitted values.
func DecodeForm(values url.Values) (Form, error) {
	var f Form
	if err := formDecoder.Decode(&f, values); err != nil {
		return Form{}, fmt.Errorf("decode modal form: %w", err)
	}
	return f.trimmed(), nil
}

func (f Form) trimmed() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Description = strings.TrimSpace(f.Description)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	f.TargetID = strings.TrimSpace(f.TargetID)
	f.Role = strings.TrimSpace(f.Role)
	return f
}

// FormFor builds the initial form for a request. Edit modals are pre-filled
// from the entity snapshot; every other kind starts blank.
func FormFor(req Request) Form {
	switch r := req.(type) {
	case UpdateEmployee:
		e := r.Employee
		return Form{
			Name:      e.Name,
			Email:     e.Email,
			StartDate: domain.FormDate(e.StartDate),
			EndDate:   domain.FormDate(e.EndDate),
			Positions: domain.JoinList(e.Positions),
			TechStack: domain.JoinList(e.TechStack),
		}
	case UpdateProject:
		p := r.Project
		return Form{
			Name:        p.Name,
			Description: p.Description,
			StartDate:   domain.FormDate(p.StartDate),
			EndDate:     domain.FormDate(p.EndDate),
			TechStack:   domain.JoinList(p.TechStack),
		}
	default:
		return Form{}
	}
}

type employeeCreateRules struct {
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"required,contains=@"`
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type employeeUpdateRules struct {
	Email     string `form:"email" validate:"omitempty,contains=@"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type projectCreateRules struct {
	Name      string `form:"name" validate:"required"`
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type projectUpdateRules struct {
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type assignmentRules struct {
	TargetID string `form:"target_id" validate:"required"`
	Role     string `form:"role" validate:"required"`
}

// Validate checks the form against the rules of kind. Confirmation modals
// have no fields and always pass.
func Validate(kind Kind, f Form) FieldErrors {
	f = f.trimmed()
	var rules any
	switch kind {
	case KindCreateEmployee:
		rules = employeeCreateRules{Name: f.Name, Email: f.Email, StartDate: f.StartDate, EndDate: f.EndDate}
	case KindUpdateEmployee:
		rules = employeeUpdateRules{Email: f.Email, StartDate: f.StartDate, EndDate: f.EndDate}
	case KindCreateProject:
		rules = projectCreateRules{Name: f.Name, StartDate: f.StartDate, EndDate: f.EndDate}
	case KindUpdateProject:
		rules = projectUpdateRules{StartDate: f.StartDate, EndDate: f.EndDate}
	case KindAssignEmployeeToProject, KindAssignProjectToEmployee:
		rules = assignmentRules{TargetID: f.TargetID, Role: f.Role}
	default:
		return nil
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"": "validation.invalid"}
	}
	out := make(FieldErrors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		out[fieldErr.Field()] = validationKey(fieldErr.Tag())
	}
	return out
}

func validationKey(tag string) string {
	switch tag {
	case "required":
		return "validation.required"
	case "datetime":
		return "validation.date"
	case "contains":
		return "validation.email"
	default:
		return "validation.invalid"
	}
}
