package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/cache"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type recordedCall struct {
	op   string
	id   domain.ID
	body any
}

type fakeMutator struct {
	mu    sync.Mutex
	calls []recordedCall
	err   error
	// started and unblock let a test hold a write in flight.
	started chan struct{}
	unblock chan struct{}
}

func (f *fakeMutator) record(op string, id domain.ID, body any) error {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{op: op, id: id, body: body})
	started, unblock, err := f.started, f.unblock, f.err
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if unblock != nil {
		<-unblock
	}
	return err
}

func (f *fakeMutator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeMutator) lastCall(t *testing.T) recordedCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("expected a backend call")
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeMutator) CreateEmployee(_ context.Context, in domain.CreateEmployeeInput) (domain.Employee, error) {
	return domain.Employee{ID: "new-e"}, f.record("CreateEmployee", "", in)
}

func (f *fakeMutator) UpdateEmployee(_ context.Context, id domain.ID, in domain.UpdateEmployeeInput) (domain.Employee, error) {
	return domain.Employee{ID: id}, f.record("UpdateEmployee", id, in)
}

func (f *fakeMutator) DeleteEmployee(_ context.Context, id domain.ID) error {
	return f.record("DeleteEmployee", id, nil)
}

func (f *fakeMutator) CreateProject(_ context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	return domain.Project{ID: "new-p"}, f.record("CreateProject", "", in)
}

func (f *fakeMutator) UpdateProject(_ context.Context, id domain.ID, in domain.UpdateProjectInput) (domain.Project, error) {
	return domain.Project{ID: id}, f.record("UpdateProject", id, in)
}

func (f *fakeMutator) DeleteProject(_ context.Context, id domain.ID) error {
	return f.record("DeleteProject", id, nil)
}

func (f *fakeMutator) Assign(_ context.Context, in domain.AssignmentInput) error {
	return f.record("Assign", "", in)
}

func (f *fakeMutator) Unassign(_ context.Context, in domain.UnassignInput) error {
	return f.record("Unassign", "", in)
}

type fakeInvalidator struct {
	mu        sync.Mutex
	mutations []cache.Mutation
}

func (f *fakeInvalidator) InvalidateMutation(_ context.Context, m cache.Mutation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, m)
	return nil
}

func (f *fakeInvalidator) recorded() []cache.Mutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cache.Mutation(nil), f.mutations...)
}

func newTestRunner(api *fakeMutator, inv *fakeInvalidator) *Runner {
	r := NewRunner(api, inv)
	r.now = func() time.Time { return time.Date(2026, 5, 1, 12, 30, 0, 0, time.FixedZone("X", 3600)) }
	return r
}

func TestSubmitCreateEmployeeSendsNormalizedPayload(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(CreateEmployee{}, "/employees")

	out := runner.Submit(context.Background(), store, m.ID, Form{
		Name:      "Ada",
		Email:     "ada@x.com",
		StartDate: "2024-01-01",
		Positions: "Dev, Lead",
		TechStack: "Go, Rust",
	})
	if !out.Succeeded() || !out.Closed {
		t.Fatalf("outcome = %#v, want closed success", out)
	}
	if out.NoticeKey != "notice.employee_created" {
		t.Fatalf("notice = %q", out.NoticeKey)
	}
	if store.IsOpen() {
		t.Fatal("modal should close on success")
	}

	raw, err := json.Marshal(api.lastCall(t).body)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	want := map[string]any{
		"name":       "Ada",
		"email":      "ada@x.com",
		"start_date": "2024-01-01",
		"positions":  []any{"Dev", "Lead"},
		"tech_stack": []any{"Go", "Rust"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("payload = %#v, want %#v", got, want)
	}

	if got := inv.recorded(); !reflect.DeepEqual(got, []cache.Mutation{{Kind: cache.MutationCreateEmployee, EmployeeID: "new-e"}}) {
		t.Fatalf("invalidations = %#v", got)
	}
}

func TestSubmitUpdateEmployeeOmitsEmptyDates(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(UpdateEmployee{Employee: domain.Employee{ID: "E", Name: "Ada", StartDate: "2024-01-01"}}, "/employees/E")

	out := runner.Submit(context.Background(), store, m.ID, Form{Name: "Ada L", Positions: "A, , b ,A"})
	if !out.Succeeded() {
		t.Fatalf("outcome = %#v", out)
	}
	call := api.lastCall(t)
	if call.op != "UpdateEmployee" || call.id != "E" {
		t.Fatalf("call = %#v", call)
	}
	raw, _ := json.Marshal(call.body)
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"start_date", "end_date", "email"} {
		if _, present := got[field]; present {
			t.Fatalf("payload carries empty %q: %s", field, raw)
		}
	}
	if !reflect.DeepEqual(got["positions"], []any{"A", "b", "A"}) {
		t.Fatalf("positions = %#v", got["positions"])
	}
	if got := inv.recorded(); !reflect.DeepEqual(got, []cache.Mutation{{Kind: cache.MutationUpdateEmployee, EmployeeID: "E"}}) {
		t.Fatalf("invalidations = %#v", got)
	}
}

func TestSubmitFailureKeepsModalOpenWithEdits(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{err: errors.New("request failed: 500")}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(CreateProject{}, "/projects")
	edits := Form{Name: "Apollo", StartDate: "2024-02-01", TechStack: "Go"}

	out := runner.Submit(context.Background(), store, m.ID, edits)
	if out.Status != StatusFailed || out.Closed {
		t.Fatalf("outcome = %#v, want open failure", out)
	}
	if out.NoticeKey != "notice.project_create_failed" {
		t.Fatalf("notice = %q", out.NoticeKey)
	}
	current, ok := store.Current()
	if !ok || current.ID != m.ID {
		t.Fatal("modal should remain open after failure")
	}
	if current.Form != edits {
		t.Fatalf("form = %#v, want %#v", current.Form, edits)
	}
	if current.Busy {
		t.Fatal("modal should not stay busy after failure")
	}
	if len(inv.recorded()) != 0 {
		t.Fatal("failure must not invalidate the cache")
	}
}

func TestSubmitInvalidFormMakesNoCall(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	runner := newTestRunner(api, &fakeInvalidator{})
	store := NewStore()
	m := store.Open(CreateEmployee{}, "/employees")

	out := runner.Submit(context.Background(), store, m.ID, Form{Name: "Ada"})
	if out.Status != StatusInvalid {
		t.Fatalf("status = %v, want invalid", out.Status)
	}
	if out.ValidationErrors["email"] == "" || out.ValidationErrors["start_date"] == "" {
		t.Fatalf("errors = %#v", out.ValidationErrors)
	}
	if api.callCount() != 0 {
		t.Fatalf("calls = %d, want 0", api.callCount())
	}
	if current, _ := store.Current(); current.Form.Name != "Ada" {
		t.Fatal("invalid submit should keep typed values")
	}
}

func TestSubmitAssignSuppressesDuplicateWhilePending(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{started: make(chan struct{}), unblock: make(chan struct{})}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(AssignEmployeeToProject{Employee: domain.Employee{ID: "E"}}, "/employees/E")
	form := Form{TargetID: "P", Role: "Lead"}

	first := make(chan Outcome, 1)
	go func() {
		first <- runner.Submit(context.Background(), store, m.ID, form)
	}()
	<-api.started

	dup := runner.Submit(context.Background(), store, m.ID, form)
	if dup.Status != StatusBusy || !dup.Busy {
		t.Fatalf("duplicate outcome = %#v, want busy", dup)
	}
	close(api.unblock)

	out := <-first
	if !out.Succeeded() || out.NoticeKey != "notice.employee_assigned" {
		t.Fatalf("outcome = %#v", out)
	}
	if api.callCount() != 1 {
		t.Fatalf("calls = %d, want 1", api.callCount())
	}
	body, ok := api.lastCall(t).body.(domain.AssignmentInput)
	if !ok {
		t.Fatalf("body = %T", api.lastCall(t).body)
	}
	want := domain.AssignmentInput{EmployeeID: "E", ProjectID: "P", Role: "Lead", AssignedDate: "2026-05-01T11:30:00Z"}
	if body != want {
		t.Fatalf("assign body = %#v, want %#v", body, want)
	}

	got := cache.InvalidationFor(inv.recorded()[0])
	for _, key := range []cache.Key{cache.EmployeeProjects("E"), cache.ProjectEmployees("P")} {
		found := false
		for _, target := range got {
			if target.Key() == key {
				found = true
			}
		}
		if !found {
			t.Fatalf("invalidation %#v missing %s", got, key)
		}
	}
}

func TestSubmitBusyDuplicateKeepsInFlightForm(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{
		err:     errors.New("request failed: 500"),
		started: make(chan struct{}),
		unblock: make(chan struct{}),
	}
	runner := newTestRunner(api, &fakeInvalidator{})
	store := NewStore()
	m := store.Open(CreateEmployee{}, "/employees")
	sent := Form{Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01"}

	first := make(chan Outcome, 1)
	go func() {
		first <- runner.Submit(context.Background(), store, m.ID, sent)
	}()
	<-api.started

	dup := runner.Submit(context.Background(), store, m.ID, Form{Name: "Grace", Email: "grace@x.com", StartDate: "2025-01-01"})
	if dup.Status != StatusBusy {
		t.Fatalf("duplicate status = %v, want busy", dup.Status)
	}
	close(api.unblock)

	if out := <-first; out.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", out.Status)
	}
	current, ok := store.Current()
	if !ok || current.ID != m.ID {
		t.Fatal("modal should remain open after failure")
	}
	if current.Form != sent {
		t.Fatalf("form = %#v, want the submitted %#v", current.Form, sent)
	}
	if api.callCount() != 1 {
		t.Fatalf("calls = %d, want 1", api.callCount())
	}
}

func TestSubmitAssignFromProjectUsesPickedEmployee(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(AssignProjectToEmployee{Project: domain.Project{ID: "P"}}, "/projects/P")

	out := runner.Submit(context.Background(), store, m.ID, Form{TargetID: "E", Role: "Dev"})
	if out.NoticeKey != "notice.employee_added" {
		t.Fatalf("notice = %q", out.NoticeKey)
	}
	body := api.lastCall(t).body.(domain.AssignmentInput)
	if body.EmployeeID != "E" || body.ProjectID != "P" {
		t.Fatalf("body = %#v", body)
	}
}

func TestSubmitUnassignFillsMissingSide(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	inv := &fakeInvalidator{}
	runner := newTestRunner(api, inv)
	store := NewStore()
	m := store.Open(UnassignEmployee{
		Employee:   domain.Employee{ID: "E"},
		Assignment: domain.Assignment{ProjectID: "P", Role: "Dev"},
	}, "/employees/E")

	out := runner.Submit(context.Background(), store, m.ID, Form{})
	if !out.Succeeded() || out.NoticeKey != "notice.assignment_removed" {
		t.Fatalf("outcome = %#v", out)
	}
	if got := api.lastCall(t).body; got != (domain.UnassignInput{EmployeeID: "E", ProjectID: "P"}) {
		t.Fatalf("unassign body = %#v", got)
	}
	if got := inv.recorded(); !reflect.DeepEqual(got, []cache.Mutation{{Kind: cache.MutationUnassign, EmployeeID: "E", ProjectID: "P"}}) {
		t.Fatalf("invalidations = %#v", got)
	}
}

func TestDeclinedDeleteMakesNoCalls(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	inv := &fakeInvalidator{}
	store := NewStore()
	store.Open(DeleteEmployee{Employee: domain.Employee{ID: "E"}}, "/employees")
	store.Close()

	if api.callCount() != 0 || len(inv.recorded()) != 0 {
		t.Fatalf("calls = %d invalidations = %d, want none", api.callCount(), len(inv.recorded()))
	}
	if store.IsOpen() {
		t.Fatal("modal should be closed")
	}
}

func TestSubmitStaleModalIsIgnored(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	runner := newTestRunner(api, &fakeInvalidator{})
	store := NewStore()
	old := store.Open(DeleteProject{Project: domain.Project{ID: "P1"}}, "/projects")
	store.Open(DeleteProject{Project: domain.Project{ID: "P2"}}, "/projects")

	out := runner.Submit(context.Background(), store, old.ID, Form{})
	if out.Status != StatusStale {
		t.Fatalf("status = %v, want stale", out.Status)
	}
	if api.callCount() != 0 {
		t.Fatal("stale submit must not reach the backend")
	}
	if !store.IsOpen() {
		t.Fatal("stale submit must not close the newer modal")
	}
}

func TestSubmitSurvivesCancelledRequestContext(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{}
	runner := newTestRunner(api, &fakeInvalidator{})
	store := NewStore()
	m := store.Open(DeleteProject{Project: domain.Project{ID: "P"}}, "/projects")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if out := runner.Submit(ctx, store, m.ID, Form{}); !out.Succeeded() {
		t.Fatalf("outcome = %#v, want success", out)
	}
}

func TestSubmitSuccessAfterUserMovedOnKeepsNewModal(t *testing.T) {
	t.Parallel()

	api := &fakeMutator{started: make(chan struct{}), unblock: make(chan struct{})}
	runner := newTestRunner(api, &fakeInvalidator{})
	store := NewStore()
	m := store.Open(DeleteEmployee{Employee: domain.Employee{ID: "E"}}, "/employees")

	done := make(chan Outcome, 1)
	go func() { done <- runner.Submit(context.Background(), store, m.ID, Form{}) }()
	<-api.started
	next := store.Open(CreateProject{}, "/projects")
	close(api.unblock)
	<-done

	current, ok := store.Current()
	if !ok || current.ID != next.ID {
		t.Fatal("late success closed the modal the user opened afterwards")
	}
}
