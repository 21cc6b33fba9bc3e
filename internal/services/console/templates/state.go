// Package templates renders console pages and fragments as templ components.
// Markup lives in the .templ sources; the _templ.go files are generated.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"encoding/json"

	"github.com/louisbranch/staffdesk/internal/services/console/routepath"
)

// ViewState is the render state of a data-backed region. Exactly one state
// applies at a time.
type ViewState int

const (
	StateLoading ViewState = iota
	StateError
	StateReady
)

// hxVals encodes values for an hx-vals attribute.
func hxVals(values map[string]string) string {
	payload, err := json.Marshal(values)
	if err != nil {
		return "{}"
	}
	return string(payload)
}

// sortHref links a column header to base ordered by field, flipping to
// descending when the list is already ordered by it.
func sortHref(base, field, current string) string {
	next := field
	if current == field {
		next = field + " desc"
	}
	return routepath.WithOrder(base, next)
}
