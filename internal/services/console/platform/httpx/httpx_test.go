package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }), mark("a"), nil, mark("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(order, ","); got != "a,b,handler" {
		t.Fatalf("order = %q", got)
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), RequestID())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rec.Header().Get("X-Request-ID"); !strings.HasPrefix(got, "console-") {
		t.Fatalf("generated request id = %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc" {
		t.Fatalf("echoed request id = %q", got)
	}
}

func TestRecoverPanicReturns500(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), RecoverPanic())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }), RequireSameOrigin(requestmeta.SchemePolicy{}))

	get := httptest.NewRecorder()
	h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/employees", nil))
	if get.Code != http.StatusNoContent {
		t.Fatalf("GET status = %d", get.Code)
	}

	cross := httptest.NewRecorder()
	h.ServeHTTP(cross, httptest.NewRequest(http.MethodPost, "/modal/submit", nil))
	if cross.Code != http.StatusForbidden {
		t.Fatalf("POST without origin status = %d, want 403", cross.Code)
	}

	same := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/modal/submit", nil)
	req.Header.Set("Origin", "http://example.com")
	h.ServeHTTP(same, req)
	if same.Code != http.StatusNoContent {
		t.Fatalf("POST same origin status = %d", same.Code)
	}
}

func TestWriteRedirectIsHTMXAware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/modal/submit", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	WriteRedirect(rec, req, "/employees")
	if rec.Code != http.StatusOK || rec.Header().Get("HX-Redirect") != "/employees" {
		t.Fatalf("htmx redirect = %d %q", rec.Code, rec.Header().Get("HX-Redirect"))
	}

	rec = httptest.NewRecorder()
	WriteRedirect(rec, httptest.NewRequest(http.MethodPost, "/modal/submit", nil), "/employees")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/employees" {
		t.Fatalf("plain redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestSafeReturnPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/employees/e1":      "/employees/e1",
		"":                   "/",
		"https://evil.test/": "/",
		"//evil.test/":       "/",
		"/\\evil.test":       "/",
		"employees":          "/",
	}
	for raw, want := range tests {
		if got := SafeReturnPath(raw, "/"); got != want {
			t.Fatalf("SafeReturnPath(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRequestLoggerKeepsStatus(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}), RequestLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))
	if rec.Code != http.StatusTeapot || rec.Body.String() != "short and stout" {
		t.Fatalf("response = %d %q", rec.Code, rec.Body.String())
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	t.Parallel()

	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if rec.Status() != http.StatusOK {
		t.Fatalf("Status() = %d", rec.Status())
	}
	_, _ = rec.Write([]byte("x"))
	rec.WriteHeader(http.StatusNotFound)
	if rec.Status() != http.StatusOK {
		t.Fatalf("Status() after write = %d, want first status", rec.Status())
	}
}
