package workflow

import (
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

func TestOpenReplacesModalWithoutLeakingForm(t *testing.T) {
	t.Parallel()

	store := NewStore()
	a := domain.Employee{ID: "A", Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01", Positions: []string{"Dev"}}
	b := domain.Employee{ID: "B", Name: "Bob", Email: "bob@x.com", StartDate: "2023-03-01T00:00:00Z"}

	first := store.Open(UpdateEmployee{Employee: a}, "/employees/A")
	if !store.SaveForm(first.ID, Form{Name: "Ada Lovelace", Email: "ada@x.com", Positions: "Dev, Lead"}) {
		t.Fatal("SaveForm() = false for open modal")
	}

	second := store.Open(UpdateEmployee{Employee: b}, "/employees/B")
	if second.ID == first.ID {
		t.Fatal("expected a fresh modal id on reopen")
	}
	current, ok := store.Current()
	if !ok {
		t.Fatal("expected modal to be open")
	}
	want := Form{Name: "Bob", Email: "bob@x.com", StartDate: "2023-03-01"}
	if current.Form != want {
		t.Fatalf("form = %#v, want %#v", current.Form, want)
	}
	if current.ReturnTo != "/employees/B" {
		t.Fatalf("return to = %q", current.ReturnTo)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Close()
	store.Open(CreateProject{}, "/projects")
	store.Close()
	store.Close()
	if store.IsOpen() {
		t.Fatal("expected store to be closed")
	}
	if _, ok := store.Current(); ok {
		t.Fatal("Current() reported an open modal after Close")
	}
}

func TestCloseModalOnlyClosesSameInstance(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := store.Open(CreateEmployee{}, "/employees")
	second := store.Open(CreateProject{}, "/projects")

	if store.CloseModal(first.ID) {
		t.Fatal("CloseModal() closed a replaced instance")
	}
	if !store.IsOpen() {
		t.Fatal("second modal should still be open")
	}
	if !store.CloseModal(second.ID) {
		t.Fatal("CloseModal() did not close the open instance")
	}
}

func TestBeginMutationAllowsOneInFlight(t *testing.T) {
	t.Parallel()

	store := NewStore()
	m := store.Open(DeleteProject{Project: domain.Project{ID: "P"}}, "/projects")

	release, ok := store.BeginMutation(m.ID)
	if !ok {
		t.Fatal("first BeginMutation() should succeed")
	}
	if _, again := store.BeginMutation(m.ID); again {
		t.Fatal("second BeginMutation() should be refused while in flight")
	}
	if current, _ := store.Current(); !current.Busy {
		t.Fatal("modal should be busy while in flight")
	}
	release()
	release()
	if _, ok := store.BeginMutation(m.ID); !ok {
		t.Fatal("BeginMutation() should succeed after release")
	}
}

func TestBeginMutationRejectsUnknownModal(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if _, ok := store.BeginMutation("missing"); ok {
		t.Fatal("BeginMutation() on closed store should fail")
	}
}

func TestFormForPrefillsProject(t *testing.T) {
	t.Parallel()

	got := FormFor(UpdateProject{Project: domain.Project{
		Name:        "Apollo",
		Description: "Moonshot",
		StartDate:   "2024-02-01",
		EndDate:     "2024-12-31T00:00:00Z",
		TechStack:   []string{"Go", "Rust"},
	}})
	want := Form{Name: "Apollo", Description: "Moonshot", StartDate: "2024-02-01", EndDate: "2024-12-31", TechStack: "Go, Rust"}
	if got != want {
		t.Fatalf("FormFor() = %#v, want %#v", got, want)
	}
	if FormFor(AssignEmployeeToProject{Employee: domain.Employee{ID: "E"}}) != (Form{}) {
		t.Fatal("assign modal should start blank")
	}
}

func TestDecodeFormTrimsValues(t *testing.T) {
	t.Parallel()

	got, err := DecodeForm(url.Values{
		"name":       {"  Ada "},
		"email":      {"ada@x.com"},
		"start_date": {"2024-01-01"},
		"positions":  {"Dev, Lead"},
		"target_id":  {" P1 "},
		"unknown":    {"ignored"},
	})
	if err != nil {
		t.Fatalf("DecodeForm() error = %v", err)
	}
	want := Form{Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01", Positions: "Dev, Lead", TargetID: "P1"}
	if got != want {
		t.Fatalf("DecodeForm() = %#v, want %#v", got, want)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		form Form
		want FieldErrors
	}{
		{
			name: "create employee ok",
			kind: KindCreateEmployee,
			form: Form{Name: "Ada", Email: "a@x", StartDate: "2024-01-01"},
		},
		{
			name: "create employee missing fields",
			kind: KindCreateEmployee,
			form: Form{Email: "nope", StartDate: "01/02/2024"},
			want: FieldErrors{"name": "validation.required", "email": "validation.email", "start_date": "validation.date"},
		},
		{
			name: "update employee allows blanks",
			kind: KindUpdateEmployee,
			form: Form{},
		},
		{
			name: "update project bad end date",
			kind: KindUpdateProject,
			form: Form{EndDate: "soon"},
			want: FieldErrors{"end_date": "validation.date"},
		},
		{
			name: "create project requires start",
			kind: KindCreateProject,
			form: Form{Name: "Apollo"},
			want: FieldErrors{"start_date": "validation.required"},
		},
		{
			name: "assign requires target and role",
			kind: KindAssignProjectToEmployee,
			form: Form{Role: "  "},
			want: FieldErrors{"target_id": "validation.required", "role": "validation.required"},
		},
		{
			name: "confirmation has no fields",
			kind: KindDeleteEmployee,
			form: Form{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Validate(tc.kind, tc.form)
			if len(got) != len(tc.want) {
				t.Fatalf("Validate() = %#v, want %#v", got, tc.want)
			}
			for field, key := range tc.want {
				if got[field] != key {
					t.Fatalf("Validate()[%q] = %q, want %q", field, got[field], key)
				}
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		if got, ok := ParseKind(string(kind)); !ok || got != kind {
			t.Fatalf("ParseKind(%q) = %q, %v", kind, got, ok)
		}
	}
	if _, ok := ParseKind("drop_tables"); ok {
		t.Fatal("ParseKind() accepted an unknown kind")
	}
}

func TestSessionsReuseAndEvict(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	sessions := NewSessions(time.Hour)
	sessions.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	if _, ok := sessions.Lookup("s1"); ok {
		t.Fatal("Lookup() should not create stores")
	}
	first := sessions.Store("s1")
	if got, ok := sessions.Lookup("s1"); !ok || got != first {
		t.Fatal("Lookup() should find an existing store")
	}
	if sessions.Store("s1") != first {
		t.Fatal("expected the same store for the same session")
	}
	if sessions.Store("s2") == first {
		t.Fatal("expected separate stores per session")
	}

	mu.Lock()
	now = now.Add(90 * time.Minute)
	mu.Unlock()
	if removed := sessions.Evict(); removed != 2 {
		t.Fatalf("Evict() = %d, want 2", removed)
	}
	if sessions.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", sessions.Len())
	}
	if sessions.Store("s1") == first {
		t.Fatal("expected a fresh store after eviction")
	}
}
