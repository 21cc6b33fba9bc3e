package employees

import (
	"errors"
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
		employees: []domain.Employee{
			{ID: "e2", Name: "Grace", Email: "grace@x.com", StartDate: "2021-06-01"},
			{ID: "e1", Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01", Positions: []string{"Dev"}},
		},
		assignments: map[domain.ID][]domain.Assignment{
			"e1": {{EmployeeID: "e1", ProjectID: "p1", ProjectName: "Apollo", Role: "Lead", AssignedAt: "2024-03-01T00:00:00Z"}},
		},
	}
}

func TestModuleIDAndHealth(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "employees" {
		t.Fatalf("ID() = %q", got)
	}
	if New().Healthy() {
		t.Fatal("module without gateway should be unhealthy")
	}
	if !New(WithGateway(sampleGateway())).Healthy() {
		t.Fatal("module with gateway should be healthy")
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
		{name: "list page shell", path: "/employees", status: http.StatusOK, want: []string{`id="employee-list"`, `hx-trigger="load"`}},
		{name: "list fragment", path: "/employees?section=list", status: http.StatusOK, want: []string{"Ada", "Grace"}},
		{name: "bad order", path: "/employees?order_by=salary", status: http.StatusBadRequest},
		{name: "detail", path: "/employees/e1", status: http.StatusOK, want: []string{"Ada", "ada@x.com", `id="assignments"`}},
		{name: "detail missing", path: "/employees/nope", status: http.StatusNotFound, want: []string{"Employee not found"}},
		{name: "assignments fragment", path: "/employees/e1?section=assignments", status: http.StatusOK, want: []string{"Apollo", "Lead", "Since March 2024"}},
		{name: "empty assignments", path: "/employees/e2?section=assignments", status: http.StatusOK, want: []string{"Not assigned to any project."}},
		{name: "projects alias", path: "/employees/e1/projects", status: http.StatusSeeOther},
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

func TestListSortsByOrderParam(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, sampleGateway())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees?section=list&order_by=name", nil))
	body := rec.Body.String()
	if strings.Index(body, "Ada") > strings.Index(body, "Grace") {
		t.Fatalf("expected Ada before Grace:\n%s", body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees?section=list&order_by=start_date%20desc", nil))
	body = rec.Body.String()
	if strings.Index(body, "Ada") > strings.Index(body, "Grace") {
		t.Fatalf("expected most recent start first:\n%s", body)
	}
}

func TestListFailureRendersErrorState(t *testing.T) {
	t.Parallel()

	g := sampleGateway()
	g.listErr = &api.Error{Op: "ListEmployees", Status: http.StatusInternalServerError}
	h := newTestHandler(t, g)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees?section=list", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if !strings.Contains(rec.Body.String(), "Error loading employees") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestAssignmentsFailureStaysInRegion(t *testing.T) {
	t.Parallel()

	g := sampleGateway()
	g.assignmentsErr = errors.New("dial tcp: refused")
	h := newTestHandler(t, g)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees/e1?section=assignments", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `id="assignments"`) || !strings.Contains(body, "Error loading assignments") {
		t.Fatalf("body = %s", body)
	}
	if strings.Contains(body, "<html") {
		t.Fatal("fragment should not include the layout")
	}
}

func TestUnconfiguredModuleReportsUnavailable(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees/e1", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}
