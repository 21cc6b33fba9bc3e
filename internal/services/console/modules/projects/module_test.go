package projects

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
)

func newTestHandler(t *testing.T, g Gateway) http.Handler {
	t.Helper()
	mount, err := New(WithGateway(g), WithRenderer(pagerender.New(requestmeta.SchemePolicy{}, nil))).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func sampleGateway() fakeGateway {
	return fakeGateway{
		projects: []domain.Project{
			{ID: "p1", Name: "Zephyr", Description: "Weather", StartDate: "2022-01-10", TechStack: []string{"Go"}},
			{ID: "p2", Name: "Apollo", Description: "Moonshot", StartDate: "2024-02-01", EndDate: "2024-12-31"},
		},
		assignments: map[domain.ID][]domain.Assignment{
			"p1": {
				{EmployeeID: "e1", ProjectID: "p1", EmployeeName: "Ada", Role: "Lead"},
				{EmployeeID: "e9", Role: "Dev"},
			},
		},
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, sampleGateway())
	tests := []struct {
		name   string
		path   string
		status int
		want   []string
	}{
		{name: "list page shell", path: "/projects", status: http.StatusOK, want: []string{`id="project-list"`, "Add Project"}},
		{name: "list fragment", path: "/projects?section=list", status: http.StatusOK, want: []string{"Zephyr", "Apollo", "Moonshot"}},
		{name: "bad order", path: "/projects?order_by=budget%20desc", status: http.StatusBadRequest},
		{name: "detail ongoing", path: "/projects/p1", status: http.StatusOK, want: []string{"Zephyr", "January 10, 2022 to ongoing"}},
		{name: "detail ended", path: "/projects/p2", status: http.StatusOK, want: []string{"February 1, 2024 to December 31, 2024"}},
		{name: "detail missing", path: "/projects/p404", status: http.StatusNotFound, want: []string{"Project not found"}},
		{name: "team fragment", path: "/projects/p1?section=assignments", status: http.StatusOK, want: []string{"Ada", "Employee e9", `data-project-id="p1"`}},
		{name: "empty team", path: "/projects/p2?section=assignments", status: http.StatusOK, want: []string{"No employees assigned."}},
		{name: "employees alias", path: "/projects/p1/employees", status: http.StatusSeeOther},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			body := rec.Body.String()
			for _, want := range tc.want {
				if !strings.Contains(body, want) {
					t.Fatalf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}

func TestListOrderByName(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, sampleGateway())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects?section=list&order_by=name", nil))
	body := rec.Body.String()
	if strings.Index(body, "Apollo") > strings.Index(body, "Zephyr") {
		t.Fatalf("expected Apollo before Zephyr:\n%s", body)
	}
}

func TestHTMXDetailFailureReturnsFragment(t *testing.T) {
	t.Parallel()

	g := sampleGateway()
	g.getErr = &api.Error{Op: "GetProject", Status: http.StatusServiceUnavailable}
	h := newTestHandler(t, g)

	req := httptest.NewRequest(http.MethodGet, "/projects/p1", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") || !strings.Contains(body, "Error loading project") {
		t.Fatalf("body = %s", body)
	}
}

func TestTeamFailureStaysInRegion(t *testing.T) {
	t.Parallel()

	g := sampleGateway()
	g.assignmentsErr = &api.Error{Op: "ListProjectAssignments", Status: http.StatusInternalServerError}
	h := newTestHandler(t, g)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/p1?section=assignments", nil))
	if !strings.Contains(rec.Body.String(), "Error loading team") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestModuleHealth(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("module without gateway should be unhealthy")
	}
	if got := New().ID(); got != "projects" {
		t.Fatalf("ID() = %q", got)
	}
}
