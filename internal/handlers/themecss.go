package handlers

import (
	"net/http"

	applog "neuralrecon/internal/log"
)

// ThemeCSS serves the :root custom-property block for the active skin.
// The stylesheet changes whenever the active skin does, so it is never
// cacheable.
func ThemeCSS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if registry == nil {
		http.Error(w, "theme registry not configured", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(registry.StyleSheet())); err != nil {
		applog.Debug(r.Context(), "failed to write theme stylesheet", "error", err)
	}
}
