package staffctl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/domain"
)

type fakeClient struct {
	employees  []domain.Employee
	projects   []domain.Project
	team       []domain.Assignment
	assigned   []domain.AssignmentInput
	unassigned []domain.UnassignInput
	err        error
}

func (f *fakeClient) ListEmployees(context.Context) ([]domain.Employee, error) {
	return append([]domain.Employee(nil), f.employees...), f.err
}

func (f *fakeClient) GetEmployee(_ context.Context, id domain.ID) (domain.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, errors.New("request failed: 404")
}

func (f *fakeClient) ListEmployeeAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return f.team, f.err
}

func (f *fakeClient) ListProjects(context.Context) ([]domain.Project, error) {
	return append([]domain.Project(nil), f.projects...), f.err
}

func (f *fakeClient) GetProject(_ context.Context, id domain.ID) (domain.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, errors.New("request failed: 404")
}

func (f *fakeClient) ListProjectAssignments(context.Context, domain.ID) ([]domain.Assignment, error) {
	return f.team, f.err
}

func (f *fakeClient) Assign(_ context.Context, in domain.AssignmentInput) error {
	f.assigned = append(f.assigned, in)
	return f.err
}

func (f *fakeClient) Unassign(_ context.Context, in domain.UnassignInput) error {
	f.unassigned = append(f.unassigned, in)
	return f.err
}

func run(t *testing.T, client *fakeClient, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(Config{APIBaseURL: "http://backend.test"}, func(string, time.Duration) (Client, error) {
		return client, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func sampleClient() *fakeClient {
	return &fakeClient{
		employees: []domain.Employee{
			{ID: "e2", Name: "Grace", Email: "grace@x.com", StartDate: "2021-06-01", EndDate: "2023-01-01"},
			{ID: "e1", Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01", Positions: []string{"Dev", "Lead"}},
		},
		projects: []domain.Project{
			{ID: "p1", Name: "Apollo", StartDate: "2024-02-01", TechStack: []string{"Go"}},
		},
		team: []domain.Assignment{{EmployeeID: "e1", ProjectID: "p1", ProjectName: "Apollo", Role: "Lead", AssignedAt: "2024-03-01"}},
	}
}

func TestEmployeesListTable(t *testing.T) {
	t.Parallel()

	out, err := run(t, sampleClient(), "employees", "list", "--order-by", "name")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	for _, want := range []string{"NAME", "Ada", "Dev, Lead", "former", "2024-01-01"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Ada") > strings.Index(out, "Grace") {
		t.Fatalf("expected name ordering:\n%s", out)
	}
}

func TestEmployeesListRejectsBadOrder(t *testing.T) {
	t.Parallel()

	if _, err := run(t, sampleClient(), "employees", "list", "--order-by", "salary"); err == nil {
		t.Fatal("expected order_by validation error")
	}
}

func TestProjectsListJSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, sampleClient(), "--json", "projects", "list")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	var got []domain.Project
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].Name != "Apollo" {
		t.Fatalf("projects = %#v", got)
	}
}

func TestShowCommands(t *testing.T) {
	t.Parallel()

	out, err := run(t, sampleClient(), "employees", "show", "e1")
	if err != nil {
		t.Fatalf("employees show error = %v", err)
	}
	if !strings.Contains(out, "ada@x.com") || !strings.Contains(out, "March 2024") {
		t.Fatalf("output:\n%s", out)
	}

	out, err = run(t, sampleClient(), "projects", "show", "p1")
	if err != nil {
		t.Fatalf("projects show error = %v", err)
	}
	if !strings.Contains(out, "February 1, 2024") || !strings.Contains(out, "Lead") {
		t.Fatalf("output:\n%s", out)
	}

	if _, err := run(t, sampleClient(), "projects", "show", "nope"); err == nil {
		t.Fatal("expected error for unknown project")
	}
}

func TestAssignBuildsPayload(t *testing.T) {
	t.Parallel()

	client := sampleClient()
	out, err := run(t, client, "assign", "--employee", "e1", "--project", " p1 ", "--role", "Lead")
	if err != nil {
		t.Fatalf("assign error = %v", err)
	}
	if len(client.assigned) != 1 {
		t.Fatalf("assigned = %#v", client.assigned)
	}
	in := client.assigned[0]
	if in.EmployeeID != "e1" || in.ProjectID != "p1" || in.Role != "Lead" {
		t.Fatalf("payload = %#v", in)
	}
	if _, err := time.Parse(time.RFC3339, in.AssignedDate); err != nil {
		t.Fatalf("assigned date %q: %v", in.AssignedDate, err)
	}
	if !strings.Contains(out, "assigned e1 to p1") {
		t.Fatalf("output = %q", out)
	}
}

func TestAssignValidation(t *testing.T) {
	t.Parallel()

	client := sampleClient()
	_, err := run(t, client, "assign", "--employee", "e1")
	if err == nil || !strings.Contains(err.Error(), "--project: required") || !strings.Contains(err.Error(), "--role: required") {
		t.Fatalf("error = %v", err)
	}
	if len(client.assigned) != 0 {
		t.Fatal("invalid assign must not call the backend")
	}
}

func TestUnassign(t *testing.T) {
	t.Parallel()

	client := sampleClient()
	if _, err := run(t, client, "unassign", "--employee", "e1"); err == nil {
		t.Fatal("expected missing project error")
	}
	if _, err := run(t, client, "unassign", "--employee", "e1", "--project", "p1"); err != nil {
		t.Fatalf("unassign error = %v", err)
	}
	want := domain.UnassignInput{EmployeeID: "e1", ProjectID: "p1"}
	if len(client.unassigned) != 1 || client.unassigned[0] != want {
		t.Fatalf("unassigned = %#v", client.unassigned)
	}
}

func TestBackendErrorsSurface(t *testing.T) {
	t.Parallel()

	client := sampleClient()
	client.err = errors.New("request failed: 502")
	if _, err := run(t, client, "employees", "list"); err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("error = %v", err)
	}
}
