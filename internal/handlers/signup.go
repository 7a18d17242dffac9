package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"gorm.io/gorm"

	applog "neuralrecon/internal/log"
	"neuralrecon/internal/views/layout"
	"neuralrecon/internal/views/pages"
)

// Signup displays the operator registration form and processes new records.
func Signup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if ActiveSession(r) {
			redirectToApp(w, r)
			return
		}
		renderSignup(w, r, "", "")
	case http.MethodPost:
		if sessionManager == nil || database == nil {
			http.Error(w, "registration not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse signup form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		callsign := normalizeCallsign(r.PostFormValue("callsign"))
		accessCode := r.PostFormValue("access_code")
		confirm := r.PostFormValue("confirm_code")

		if !callsignPattern.MatchString(callsign) {
			renderSignup(w, r, "Callsigns are 3-24 characters: lowercase letters, digits, dash, underscore.", callsign)
			return
		}
		if len(accessCode) < 8 {
			renderSignup(w, r, "Access codes must be at least 8 characters long.", callsign)
			return
		}
		if accessCode != confirm {
			renderSignup(w, r, "Access codes do not match.", callsign)
			return
		}

		if _, err := findPlayerByCallsign(r, callsign); err == nil {
			renderSignup(w, r, "That callsign is already on record.", callsign)
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			applog.Error(r.Context(), "failed to check existing player", "error", err)
			renderSignup(w, r, "Registration is unavailable. Try again.", callsign)
			return
		}

		player, err := createPlayer(r, callsign, accessCode)
		if err != nil {
			applog.Error(r.Context(), "failed to create player", "error", err)
			renderSignup(w, r, "Registration is unavailable. Try again.", callsign)
			return
		}

		if err := establishSession(r, player); err != nil {
			applog.Error(r.Context(), "failed to establish session after signup", "error", err)
			redirectToLogin(w, r)
			return
		}

		applog.Info(r.Context(), "operator registered", "callsign", player.Callsign)
		redirectToApp(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func renderSignup(w http.ResponseWriter, r *http.Request, message, callsign string) {
	var component templ.Component
	if isHTMX(r) {
		component = pages.Signup(message, callsign)
	} else {
		component = layout.Page("Register — Neural Recon", bodyClass(), pages.Signup(message, callsign))
	}
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render signup view", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
