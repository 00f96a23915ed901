package editor

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// EventChanged is the HX-Trigger event sent after every tree mutation.
const EventChanged = "pagecraft:changed"

// Render writes a templ component to the HTTP response.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    editor.Render(w, r, generator.FragmentComponent(inst))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// triggerHeader builds an HX-Trigger header value. Without data the event
// name is sent as is; with data HTMX fires the event with evt.detail set to
// the object:
//
//	triggerHeader("pagecraft:changed", nil)                 // pagecraft:changed
//	triggerHeader("pagecraft:changed", map[string]any{...}) // {"pagecraft:changed": {...}}
func triggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	out, _ := json.Marshal(map[string]any{event: data})
	return string(out)
}
