package pagerender

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/louisbranch/staffdesk/internal/services/console/platform/apperrors"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/flash"
	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
	"github.com/louisbranch/staffdesk/internal/services/console/templates"
)

func TestWritePageIncludesFlashToastAndModal(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flash.Write(seed, httptest.NewRequest(http.MethodPost, "/modal/submit", nil), flash.Success("notice.project_deleted"), requestmeta.SchemePolicy{})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	for _, c := range seed.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	modal := func(*http.Request, templates.Localizer) templ.Component {
		return templ.Raw(`<div id="modal">open</div>`)
	}
	New(requestmeta.SchemePolicy{}, modal).WritePage(rec, req, Page{
		Title:    "Projects",
		Nav:      templates.NavProjects,
		Fragment: templ.Raw(`<p id="content">list</p>`),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Project deleted", `<p id="content">list</p>`, `<div id="modal">open</div>`, "<title>Projects | Staffdesk</title>"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestWriteErrorMapsUnavailableToBadGateway(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	err := apperrors.FromAPI(errors.New("Request failed: 500"), "employees.error")
	New(requestmeta.SchemePolicy{}, nil).WriteError(rec, req, err)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error loading employees") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestWriteErrorForHTMXSkipsLayout(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/p1", nil)
	req.Header.Set("HX-Request", "true")
	New(requestmeta.SchemePolicy{}, nil).WriteError(rec, req, apperrors.E(apperrors.KindNotFound, "missing"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("htmx error should not render the layout")
	}
	if !strings.Contains(body, "Page not found") {
		t.Fatalf("body = %q", body)
	}
}

func TestPublicMessageFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(nil, errors.New("boom")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage() = %q", got)
	}
}
