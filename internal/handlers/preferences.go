package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "neuralrecon/internal/log"
)

// UpdatePreferences switches the active skin and stores the choice on the
// signed-in player's record. The registry persists its own copy through the
// preference store; the per-player column makes the choice follow the
// operator across sign-ins.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if registry == nil {
		http.Error(w, "theme registry not configured", http.StatusServiceUnavailable)
		return
	}
	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse preference form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	id := strings.TrimSpace(r.PostFormValue("theme"))
	if id == "" {
		http.Error(w, "missing theme identifier", http.StatusBadRequest)
		return
	}
	if !registry.Set(id) {
		http.Error(w, "unknown theme identifier", http.StatusBadRequest)
		return
	}

	if database != nil {
		if player, err := loadCurrentPlayer(r); err == nil {
			if err := database.WithContext(r.Context()).
				Model(player).Update("theme", id).Error; err != nil {
				applog.Warn(r.Context(), "failed to store player skin preference", "error", err)
			}
		} else {
			applog.Debug(r.Context(), "no player record for skin preference", "error", err)
		}
	}

	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionFlashKey, "Skin applied: "+registry.Text("victory"))
	}
	applog.Info(r.Context(), "skin activated", "theme", id)

	if isHTMX(r) || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"theme": id}); err != nil {
			applog.Error(r.Context(), "failed to encode preference response", "error", err)
		}
		return
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}
