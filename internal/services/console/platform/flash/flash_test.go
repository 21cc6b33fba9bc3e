package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
)

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodPost, "/modal/submit", nil), Success("notice.employee_created"), requestmeta.SchemePolicy{})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %#v", cookies)
	}

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.AddCookie(cookies[0])
	readRec := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRec, req, requestmeta.SchemePolicy{})
	if !ok {
		t.Fatal("expected notice")
	}
	if notice.Kind != KindSuccess || notice.Key != "notice.employee_created" {
		t.Fatalf("notice = %+v", notice)
	}
	cleared := readRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected clearing cookie, got %#v", cleared)
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "shout", Key: "x"}, requestmeta.SchemePolicy{})
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie for invalid notice")
	}
	if (Notice{Kind: KindError}).Valid() {
		t.Fatal("notice without key should be invalid")
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "!!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req, requestmeta.SchemePolicy{}); ok {
		t.Fatal("expected garbage cookie to be rejected")
	}
	if _, ok := ReadAndClear(nil, nil, requestmeta.SchemePolicy{}); ok {
		t.Fatal("expected nil request to yield no notice")
	}
}
