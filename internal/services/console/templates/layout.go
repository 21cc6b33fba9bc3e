package templates

import (
	"strings"

	"github.com/a-h/templ"
)

// Nav identifies the active top-level section.
type Nav string

const (
	NavHome      Nav = "home"
	NavEmployees Nav = "employees"
	NavProjects  Nav = "projects"
)

// Toast is a transient notice shown after an action.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions configures the page shell.
type LayoutOptions struct {
	Title string
	Lang  string
	Loc   Localizer
	Nav   Nav
	Toast *Toast
	// Modal is rendered into the modal root so a reload keeps an open dialog.
	Modal templ.Component
}

const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"[45]..","swap":true,"error":false}]}`

const consoleStyles = `<style>body{font-family:system-ui,sans-serif;margin:0;color:#1f2933}
header.top{display:flex;gap:1.5rem;padding:1rem 2rem;background:#1f2933}
header.top nav{display:flex;gap:1rem}
header.top a{color:#f5f7fa;text-decoration:none}header.top a.active{font-weight:700}
main{padding:2rem;max-width:72rem;margin:0 auto}
table{border-collapse:collapse;width:100%}th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e4e7eb}
.error{color:#b91c1c}.empty{color:#616e7c}.field-error{color:#b91c1c;font-size:.875rem}
.toast{position:fixed;bottom:1rem;right:1rem;padding:.75rem 1rem;border-radius:.375rem;background:#e4e7eb}
.toast-success{background:#dcfce7}.toast-error{background:#fee2e2}
.modal-backdrop{position:fixed;inset:0;background:rgba(0,0,0,.4);display:flex;align-items:center;justify-content:center}
.modal{background:#fff;padding:1.5rem;border-radius:.5rem;min-width:24rem}
.modal label{display:block;margin-top:.75rem}
.busy-label{display:none}.htmx-request .busy-label{display:inline}.htmx-request .idle-label{display:none}</style>`

func layoutLang(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	return "en-US"
}

func pageTitle(loc Localizer, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return T(loc, "app.name")
	}
	return T(loc, "title.page", title)
}

func toastVisible(toast *Toast) bool {
	return toast != nil && strings.TrimSpace(toast.Message) != ""
}

func toastKind(toast *Toast) string {
	if kind := strings.TrimSpace(toast.Kind); kind != "" {
		return kind
	}
	return "info"
}

// toastRole announces errors assertively and everything else politely.
func toastRole(toast *Toast) string {
	if toastKind(toast) == "error" {
		return "alert"
	}
	return "status"
}
