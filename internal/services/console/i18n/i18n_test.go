package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param persists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en", nil)
		tag, persist := ResolveTag(req)
		if tag != language.AmericanEnglish {
			t.Fatalf("tag = %s, want en-US", tag)
		}
		if !persist {
			t.Fatal("expected explicit lang to persist")
		}
	})

	t.Run("cookie does not persist again", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
		if _, persist := ResolveTag(req); persist {
			t.Fatal("cookie value should not be re-persisted")
		}
	})

	t.Run("unsupported accept-language falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "ja")
		if tag, _ := ResolveTag(req); tag != Default() {
			t.Fatalf("tag = %s, want default", tag)
		}
	})

	t.Run("invalid query param ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)
		if _, persist := ResolveTag(req); persist {
			t.Fatal("invalid lang should not persist")
		}
	})
}

func TestPrinterForSetsCookieOnExplicitChoice(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en-US", nil)
	rec := httptest.NewRecorder()

	printer, _ := PrinterFor(rec, req)
	if got := printer.Sprintf("notice.employee_created"); got != "Employee created successfully" {
		t.Fatalf("Sprintf() = %q", got)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 1 || cookies[0].Name != LangCookieName {
		t.Fatalf("cookies = %#v", cookies)
	}
}

func TestWorkflowCopyIsRegistered(t *testing.T) {
	printer := Printer(Default())
	tests := map[string]string{
		"modal.update_employee.title":           "Update Employee",
		"modal.update_employee.busy":            "Updating...",
		"modal.assign_employee_to_project.busy": "Assigning...",
		"modal.unassign_project.busy":           "Removing...",
		"modal.delete_project.busy":             "Deleting...",
		"notice.assignment_removed":             "Assignment removed successfully",
	}
	for key, want := range tests {
		if got := printer.Sprintf(key); got != want {
			t.Fatalf("Sprintf(%q) = %q, want %q", key, got, want)
		}
	}
	if got := printer.Sprintf("assignment.since", "March 2024"); got != "Since March 2024" {
		t.Fatalf("Sprintf(assignment.since) = %q", got)
	}
}
