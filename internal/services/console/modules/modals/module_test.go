package modals

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/staffdesk/internal/services/console/api"
	"github.com/louisbranch/staffdesk/internal/services/console/domain"
	"github.com/louisbranch/staffdesk/internal/services/console/i18n"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/flash"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/pagerender"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/sessioncookie"
	"github.com/louisbranch/staffdesk/internal/services/console/workflow"
)

type harness struct {
	t       *testing.T
	module  *Module
	handler http.Handler
	mutator *fakeMutator
	session *http.Cookie
}

func newHarness(t *testing.T, g Gateway) *harness {
	t.Helper()
	mutator := &fakeMutator{}
	m := New(
		WithGateway(g),
		WithRunner(workflow.NewRunner(mutator, nil)),
		WithSessions(workflow.NewSessions(0)),
	)
	m.SetRenderer(pagerender.New(requestmeta.SchemePolicy{}, m.RenderOpen))
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return &harness{t: t, module: m, handler: mount.Handler, mutator: mutator}
}

func sampleGateway() fakeGateway {
	return fakeGateway{
		employees: []domain.Employee{
			{ID: "e1", Name: "Ada", Email: "ada@x.com", StartDate: "2024-01-01", Positions: []string{"Dev"}},
			{ID: "e2", Name: "Bob", Email: "bob@x.com", StartDate: "2023-03-01"},
		},
		projects: []domain.Project{
			{ID: "p2", Name: "Zephyr", StartDate: "2022-01-10"},
			{ID: "p1", Name: "Apollo", StartDate: "2024-02-01"},
		},
		assignments: []domain.Assignment{
			{EmployeeID: "e1", ProjectID: "p1", ProjectName: "Apollo", Role: "Lead"},
		},
	}
}

func (h *harness) post(path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	if h.session != nil {
		req.AddCookie(h.session)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessioncookie.Name {
			h.session = c
		}
	}
	return rec
}

func (h *harness) open(values url.Values) *httptest.ResponseRecorder {
	h.t.Helper()
	return h.post("/modal/open", values, true)
}

func (h *harness) store() *workflow.Store {
	h.t.Helper()
	if h.session == nil {
		h.t.Fatal("no session cookie issued")
	}
	store, ok := h.module.Sessions().Lookup(h.session.Value)
	if !ok {
		h.t.Fatal("no store for session")
	}
	return store
}

func (h *harness) currentID() string {
	h.t.Helper()
	current, ok := h.store().Current()
	if !ok {
		h.t.Fatal("expected an open modal")
	}
	return current.ID
}

func TestOpenRendersDialog(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	rec := h.open(url.Values{"kind": {"update_employee"}, "employee_id": {"e1"}, "return_to": {"/employees/e1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`data-modal-kind="update_employee"`, `value="Ada"`, `value="ada@x.com"`, "Update Employee"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
	current, _ := h.store().Current()
	if current.ReturnTo != "/employees/e1" {
		t.Fatalf("return to = %q", current.ReturnTo)
	}
}

func TestOpenFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values url.Values
		status int
		want   string
	}{
		{name: "unknown kind", values: url.Values{"kind": {"drop_tables"}}, status: http.StatusBadRequest, want: "The request could not be understood."},
		{name: "missing employee", values: url.Values{"kind": {"delete_employee"}, "employee_id": {"nope"}}, status: http.StatusNotFound, want: "Employee not found"},
		{name: "missing id", values: url.Values{"kind": {"update_project"}}, status: http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := newHarness(t, sampleGateway())
			rec := h.open(tc.values)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			body := rec.Body.String()
			if strings.Contains(body, "modal-backdrop") {
				t.Fatal("failed open should not render a dialog")
			}
			if tc.want != "" && !strings.Contains(body, tc.want) {
				t.Fatalf("body missing %q:\n%s", tc.want, body)
			}
		})
	}
}

func TestOpenWithoutHTMXRedirectsToPage(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	rec := h.post("/modal/open", url.Values{"kind": {"create_project"}, "return_to": {"https://evil.test/"}}, false)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/projects" {
		t.Fatalf("redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(h.session)
	component := h.module.RenderOpen(req, i18n.Printer(i18n.Default()))
	if component == nil {
		t.Fatal("RenderOpen() = nil for an open modal")
	}
	var buf bytes.Buffer
	if err := component.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), `data-modal-kind="create_project"`) {
		t.Fatalf("rendered = %s", buf.String())
	}
}

func TestSubmitSuccessRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	h.open(url.Values{"kind": {"create_employee"}, "return_to": {"/employees"}})
	rec := h.post("/modal/submit", url.Values{
		"modal_id":   {h.currentID()},
		"name":       {"Grace"},
		"email":      {"grace@x.com"},
		"start_date": {"2024-05-01"},
		"positions":  {"Dev, , Lead"},
	}, true)

	if rec.Code != http.StatusOK || rec.Header().Get("HX-Redirect") != "/employees" {
		t.Fatalf("response = %d %q body=%s", rec.Code, rec.Header().Get("HX-Redirect"), rec.Body.String())
	}
	var notice *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			notice = c
		}
	}
	if notice == nil {
		t.Fatal("expected a flash notice cookie")
	}
	if h.mutator.callCount() != 1 {
		t.Fatalf("calls = %v", h.mutator.calls)
	}
	if h.store().IsOpen() {
		t.Fatal("modal should close after success")
	}
}

func TestSubmitInvalidKeepsDialog(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	h.open(url.Values{"kind": {"create_project"}})
	rec := h.post("/modal/submit", url.Values{"modal_id": {h.currentID()}, "name": {"Apollo"}}, true)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "This field is required.") || !strings.Contains(body, `value="Apollo"`) {
		t.Fatalf("body = %s", body)
	}
	if h.mutator.callCount() != 0 {
		t.Fatal("invalid form must not reach the backend")
	}
}

func TestSubmitFailureKeepsFormAndShowsNotice(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	h.mutator.fail = &api.Error{Op: "UpdateEmployee", Status: http.StatusInternalServerError}
	h.open(url.Values{"kind": {"update_employee"}, "employee_id": {"e1"}})
	rec := h.post("/modal/submit", url.Values{"modal_id": {h.currentID()}, "name": {"Ada Lovelace"}}, true)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Failed to update employee", `value="Ada Lovelace"`, `id="toast-root" hx-swap-oob="true"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
	current, ok := h.store().Current()
	if !ok || current.Form.Name != "Ada Lovelace" {
		t.Fatalf("modal after failure = %#v, %v", current, ok)
	}
}

func TestSubmitStaleModal(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	h.open(url.Values{"kind": {"delete_project"}, "project_id": {"p1"}})
	first := h.currentID()
	h.open(url.Values{"kind": {"delete_employee"}, "employee_id": {"e2"}})

	rec := h.post("/modal/submit", url.Values{"modal_id": {first}}, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "This dialog is no longer open") || !strings.Contains(body, `data-modal-kind="delete_employee"`) {
		t.Fatalf("body = %s", body)
	}
	if h.mutator.callCount() != 0 {
		t.Fatal("stale submit must not reach the backend")
	}
}

func TestSubmitWithoutSessionIsStale(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	rec := h.post("/modal/submit", url.Values{"modal_id": {"whatever"}}, true)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCloseOnlyClosesSameInstance(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	h.open(url.Values{"kind": {"create_employee"}})
	first := h.currentID()
	h.open(url.Values{"kind": {"create_project"}})

	rec := h.post("/modal/close", url.Values{"modal_id": {first}}, true)
	if !strings.Contains(rec.Body.String(), `data-modal-kind="create_project"`) {
		t.Fatalf("stale close should keep the newer dialog: %s", rec.Body.String())
	}

	rec = h.post("/modal/close", url.Values{"modal_id": {h.currentID()}}, true)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "" {
		t.Fatalf("close = %d %q", rec.Code, rec.Body.String())
	}
	if h.store().IsOpen() {
		t.Fatal("modal should be closed")
	}

	rec = h.post("/modal/close", url.Values{}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("second close status = %d", rec.Code)
	}
}

func TestAssignDialogOptions(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	body := h.open(url.Values{"kind": {"assign_employee_to_project"}, "employee_id": {"e1"}}).Body.String()
	apollo, zephyr := strings.Index(body, ">Apollo<"), strings.Index(body, ">Zephyr<")
	if apollo < 0 || zephyr < 0 || apollo > zephyr {
		t.Fatalf("options not sorted by name:\n%s", body)
	}

	rec := h.post("/modal/submit", url.Values{"modal_id": {h.currentID()}, "target_id": {"p2"}, "role": {"Dev"}}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if len(h.mutator.assigned) != 1 || h.mutator.assigned[0].EmployeeID != "e1" || h.mutator.assigned[0].ProjectID != "p2" {
		t.Fatalf("assigned = %#v", h.mutator.assigned)
	}
}

func TestAssignDialogOptionsError(t *testing.T) {
	t.Parallel()

	g := sampleGateway()
	g.listErr = errors.New("dial tcp: refused")
	h := newHarness(t, g)
	body := h.open(url.Values{"kind": {"assign_project_to_employee"}, "project_id": {"p1"}}).Body.String()
	if !strings.Contains(body, "Could not load options.") {
		t.Fatalf("body = %s", body)
	}
}

func TestUnassignFromProject(t *testing.T) {
	t.Parallel()

	h := newHarness(t, sampleGateway())
	body := h.open(url.Values{"kind": {"unassign_project"}, "project_id": {"p1"}, "employee_id": {"e1"}}).Body.String()
	if !strings.Contains(body, "Remove Employee e1 from Apollo?") {
		t.Fatalf("body = %s", body)
	}

	rec := h.post("/modal/submit", url.Values{"modal_id": {h.currentID()}}, true)
	if rec.Header().Get("HX-Redirect") != "/projects/p1" {
		t.Fatalf("redirect = %q", rec.Header().Get("HX-Redirect"))
	}
	want := domain.UnassignInput{EmployeeID: "e1", ProjectID: "p1"}
	if len(h.mutator.unassigned) != 1 || h.mutator.unassigned[0] != want {
		t.Fatalf("unassigned = %#v", h.mutator.unassigned)
	}
}

func TestHealthy(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("unconfigured module should be unhealthy")
	}
	if !newHarness(t, sampleGateway()).module.Healthy() {
		t.Fatal("configured module should be healthy")
	}
}
