package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/cache"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

// Mutator performs the backend writes a modal can trigger.
type Mutator interface {
	CreateEmployee(context.Context, domain.CreateEmployeeInput) (domain.Employee, error)
	UpdateEmployee(context.Context, domain.ID, domain.UpdateEmployeeInput) (domain.Employee, error)
	DeleteEmployee(context.Context, domain.ID) error
	CreateProject(context.Context, domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(context.Context, domain.ID, domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(context.Context, domain.ID) error
	Assign(context.Context, domain.AssignmentInput) error
	Unassign(context.Context, domain.UnassignInput) error
}

// Invalidator marks cached reads stale after a successful write.
type Invalidator interface {
	InvalidateMutation(context.Context, cache.Mutation) error
}

// Status classifies a submit attempt.
type Status int

const (
	StatusSucceeded Status = iota
	StatusFailed
	StatusInvalid
	StatusBusy
	// StatusStale means the submitted modal is no longer the open one.
	StatusStale
)

// Outcome describes what a submit did so the caller can render it.
type Outcome struct {
	Status           Status
	NoticeKey        string
	Closed           bool
	Busy             bool
	ValidationErrors FieldErrors
	// Modal is the modal as it stands after the attempt. Zero when closed.
	Modal Modal
	Err   error
}

// Succeeded reports whether the write went through.
func (o Outcome) Succeeded() bool { return o.Status == StatusSucceeded }

var errNoTarget = errors.New("workflow: target id is required")

// Runner turns a submitted modal into exactly one backend write.
type Runner struct {
	api   Mutator
	cache Invalidator
	now   func() time.Time
}

// NewRunner builds a runner. cache may be nil when nothing is cached.
func NewRunner(api Mutator, cache Invalidator) *Runner {
	return &Runner{api: api, cache: cache, now: time.Now}
}

// Submit validates f against the open modal id and performs its write.
//
// On success the cache is invalidated, the modal closes if it is still the
// same instance, and the success notice key is returned. On failure the modal
// stays open with f preserved. The write runs detached from ctx cancellation
// so closing the browser tab does not abort a request already sent.
func (r *Runner) Submit(ctx context.Context, store *Store, id string, f Form) Outcome {
	if store == nil {
		return Outcome{Status: StatusStale, Closed: true}
	}
	current, ok := store.Current()
	if !ok || current.ID != id {
		return Outcome{Status: StatusStale, Closed: true}
	}

	// Busy duplicates leave the stored form alone.
	release, ok := store.BeginMutation(id)
	if !ok {
		current.Busy = true
		return Outcome{Status: StatusBusy, Busy: true, Modal: current}
	}
	defer release()

	f = f.trimmed()
	store.SaveForm(id, f)
	current.Form = f

	if errs := Validate(current.Request.Kind(), f); len(errs) > 0 {
		return Outcome{Status: StatusInvalid, ValidationErrors: errs, Modal: current}
	}

	notices := noticesFor(current.Request.Kind())
	mutation, err := r.perform(context.WithoutCancel(ctx), current.Request, f)
	if err != nil {
		log.Printf("modal %s submit failed: kind=%s err=%v", id, current.Request.Kind(), err)
		return Outcome{Status: StatusFailed, NoticeKey: notices.failure, Modal: current, Err: err}
	}

	if r.cache != nil {
		if err := r.cache.InvalidateMutation(context.WithoutCancel(ctx), mutation); err != nil {
			log.Printf("cache invalidation failed: kind=%s err=%v", mutation.Kind, err)
		}
	}
	store.CloseModal(id)
	return Outcome{Status: StatusSucceeded, NoticeKey: notices.success, Closed: true}
}

func (r *Runner) perform(ctx context.Context, req Request, f Form) (cache.Mutation, error) {
	switch q := req.(type) {
	case CreateEmployee:
		created, err := r.api.CreateEmployee(ctx, EmployeeCreatePayload(f))
		return cache.Mutation{Kind: cache.MutationCreateEmployee, EmployeeID: created.ID}, err
	case UpdateEmployee:
		_, err := r.api.UpdateEmployee(ctx, q.Employee.ID, EmployeeUpdatePayload(f))
		return cache.Mutation{Kind: cache.MutationUpdateEmployee, EmployeeID: q.Employee.ID}, err
	case DeleteEmployee:
		err := r.api.DeleteEmployee(ctx, q.Employee.ID)
		return cache.Mutation{Kind: cache.MutationDeleteEmployee, EmployeeID: q.Employee.ID}, err
	case CreateProject:
		created, err := r.api.CreateProject(ctx, ProjectCreatePayload(f))
		return cache.Mutation{Kind: cache.MutationCreateProject, ProjectID: created.ID}, err
	case UpdateProject:
		_, err := r.api.UpdateProject(ctx, q.Project.ID, ProjectUpdatePayload(f))
		return cache.Mutation{Kind: cache.MutationUpdateProject, ProjectID: q.Project.ID}, err
	case DeleteProject:
		err := r.api.DeleteProject(ctx, q.Project.ID)
		return cache.Mutation{Kind: cache.MutationDeleteProject, ProjectID: q.Project.ID}, err
	case AssignEmployeeToProject:
		return r.assign(ctx, q.Employee.ID, domain.ID(f.TargetID), f)
	case AssignProjectToEmployee:
		return r.assign(ctx, domain.ID(f.TargetID), q.Project.ID, f)
	case UnassignEmployee:
		return r.unassign(ctx, q.Assignment, q.Employee.ID, "")
	case UnassignProject:
		return r.unassign(ctx, q.Assignment, "", q.Project.ID)
	default:
		return cache.Mutation{}, fmt.Errorf("workflow: unsupported request %T", req)
	}
}

func (r *Runner) assign(ctx context.Context, employeeID, projectID domain.ID, f Form) (cache.Mutation, error) {
	m := cache.Mutation{Kind: cache.MutationAssign, EmployeeID: employeeID, ProjectID: projectID}
	if employeeID.IsZero() || projectID.IsZero() {
		return m, errNoTarget
	}
	return m, r.api.Assign(ctx, AssignmentPayload(employeeID, projectID, f, r.now()))
}

// unassign fills the side the assignment row may omit from the view it was
// opened from.
func (r *Runner) unassign(ctx context.Context, a domain.Assignment, employeeID, projectID domain.ID) (cache.Mutation, error) {
	if a.EmployeeID.IsZero() {
		a.EmployeeID = employeeID
	}
	if a.ProjectID.IsZero() {
		a.ProjectID = projectID
	}
	m := cache.Mutation{Kind: cache.MutationUnassign, EmployeeID: a.EmployeeID, ProjectID: a.ProjectID}
	if a.EmployeeID.IsZero() || a.ProjectID.IsZero() {
		return m, errNoTarget
	}
	return m, r.api.Unassign(ctx, UnassignPayload(a))
}

type noticeKeys struct {
	success string
	failure string
}

func noticesFor(kind Kind) noticeKeys {
	switch kind {
	case KindCreateEmployee:
		return noticeKeys{"notice.employee_created", "notice.employee_create_failed"}
	case KindUpdateEmployee:
		return noticeKeys{"notice.employee_updated", "notice.employee_update_failed"}
	case KindDeleteEmployee:
		return noticeKeys{"notice.employee_deleted", "notice.employee_delete_failed"}
	case KindCreateProject:
		return noticeKeys{"notice.project_created", "notice.project_create_failed"}
	case KindUpdateProject:
		return noticeKeys{"notice.project_updated", "notice.project_update_failed"}
	case KindDeleteProject:
		return noticeKeys{"notice.project_deleted", "notice.project_delete_failed"}
	case KindAssignEmployeeToProject:
		return noticeKeys{"notice.employee_assigned", "notice.employee_assign_failed"}
	case KindAssignProjectToEmployee:
		return noticeKeys{"notice.employee_added", "notice.employee_add_failed"}
	case KindUnassignEmployee, KindUnassignProject:
		return noticeKeys{"notice.assignment_removed", "notice.assignment_remove_failed"}
	default:
		return noticeKeys{"notice.saved", "notice.save_failed"}
	}
}
