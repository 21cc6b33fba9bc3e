// Package sessioncookie identifies the browser tab session that owns a
// workflow store.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/louisbranch/staffdesk/internal/services/console/platform/requestmeta"
)

// Name is the console session cookie name.
const Name = "staffdesk_session"

// Read returns the session id when the cookie carries a valid UUID.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if _, err := uuid.Parse(value); err != nil {
		return "", false
	}
	return value, true
}

// Ensure returns the existing session id or issues a new one.
func Ensure(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) string {
	if id, ok := Read(r); ok {
		return id
	}
	id := uuid.NewString()
	if w != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     Name,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   requestmeta.IsHTTPS(r, policy),
			SameSite: http.SameSiteLaxMode,
		})
	}
	if r != nil {
		// Later reads within the same request see the new id.
		r.AddCookie(&http.Cookie{Name: Name, Value: id})
	}
	return id
}
