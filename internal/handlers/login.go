package handlers

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	applog "neuralrecon/internal/log"
	"neuralrecon/internal/views/layout"
	"neuralrecon/internal/views/pages"
)

// Login renders the sign-in view and processes submissions.
func Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			redirectToApp(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(r.Context(), sessionFlashKey)
		}
		renderLogin(w, r, message, "")
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			applog.Debug(r.Context(), "sign-in dependencies unavailable",
				"hasSession", sessionManager != nil, "hasDatabase", database != nil)
			http.Error(w, "authentication not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse sign-in form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}
		callsign := strings.TrimSpace(r.PostFormValue("callsign"))
		accessCode := r.PostFormValue("access_code")

		if callsign == "" || accessCode == "" {
			renderLogin(w, r, "Callsign and access code are required.", callsign)
			return
		}

		if !authenticate(w, r, callsign, accessCode) {
			message := ""
			if sessionManager != nil {
				message = sessionManager.PopString(r.Context(), sessionFlashKey)
			}
			if message == "" {
				message = "Invalid callsign or access code."
			}
			renderLogin(w, r, message, callsign)
			return
		}

		applog.Info(r.Context(), "operator signed in", "callsign", normalizeCallsign(callsign))
		redirectToApp(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, message, callsign string) {
	var component templ.Component
	if isHTMX(r) {
		component = pages.Login(message, callsign)
	} else {
		component = layout.Page("Sign in — Neural Recon", bodyClass(), pages.Login(message, callsign))
	}
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render sign-in view", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func bodyClass() string {
	if registry == nil {
		return "recon-shell"
	}
	return registry.BodyClass()
}
