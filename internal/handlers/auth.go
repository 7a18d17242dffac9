package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	applog "neuralrecon/internal/log"
	"neuralrecon/models"
)

const (
	sessionAuthenticatedKey = "recon:authenticated"
	sessionFlashKey         = "recon:flash"
	sessionPlayerIDKey      = "recon:player:id"
	sessionCallsignKey      = "recon:player:callsign"
)

var callsignPattern = regexp.MustCompile(`^[a-z0-9_-]{3,24}$`)

func normalizeCallsign(callsign string) string {
	return strings.ToLower(strings.TrimSpace(callsign))
}

func createPlayer(r *http.Request, callsign, accessCode string) (*models.Player, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		Callsign:   normalizeCallsign(callsign),
		AccessHash: string(hashed),
	}

	if err := database.WithContext(r.Context()).Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func findPlayerByCallsign(r *http.Request, callsign string) (*models.Player, error) {
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}

	player := &models.Player{}
	err := database.WithContext(r.Context()).
		Where("callsign = ?", normalizeCallsign(callsign)).
		First(player).Error
	if err != nil {
		return nil, err
	}
	return player, nil
}

func loadCurrentPlayer(r *http.Request) (*models.Player, error) {
	if sessionManager == nil {
		return nil, errors.New("session manager not configured")
	}
	id := sessionManager.GetInt(r.Context(), sessionPlayerIDKey)
	if id <= 0 {
		return nil, gorm.ErrRecordNotFound
	}
	if database == nil {
		return nil, gorm.ErrInvalidDB
	}
	player := &models.Player{}
	if err := database.WithContext(r.Context()).First(player, id).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// authenticate verifies the credentials and populates the session on success.
func authenticate(w http.ResponseWriter, r *http.Request, callsign, accessCode string) bool {
	if sessionManager == nil {
		http.Error(w, "authentication not available", http.StatusServiceUnavailable)
		return false
	}

	player, err := findPlayerByCallsign(r, callsign)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sessionManager.Put(r.Context(), sessionFlashKey, "Invalid callsign or access code.")
		} else {
			applog.Error(r.Context(), "failed to load player during sign-in", "error", err)
			sessionManager.Put(r.Context(), sessionFlashKey, "Sign-in is unavailable. Try again.")
		}
		return false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.AccessHash), []byte(accessCode)); err != nil {
		sessionManager.Put(r.Context(), sessionFlashKey, "Invalid callsign or access code.")
		return false
	}

	if err := establishSession(r, player); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		sessionManager.Put(r.Context(), sessionFlashKey, "Sign-in is unavailable. Try again.")
		return false
	}

	return true
}

func establishSession(r *http.Request, player *models.Player) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.RenewToken(r.Context()); err != nil {
		return err
	}
	sessionManager.Put(r.Context(), sessionAuthenticatedKey, true)
	sessionManager.Put(r.Context(), sessionPlayerIDKey, int(player.ID))
	sessionManager.Put(r.Context(), sessionCallsignKey, player.Callsign)

	// The signed-in operator's preferred skin becomes the terminal's
	// active one; an unregistered preference is ignored.
	if registry != nil && player.Theme != "" {
		if !registry.Set(player.Theme) {
			applog.Debug(r.Context(), "stored skin preference no longer registered", "theme", player.Theme)
		}
	}
	return nil
}

// RequireAuthentication ensures the player has an active session before
// accessing the resource.
func RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ActiveSession(r) {
			redirectToLogin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout destroys the current session and returns the player to sign-in.
func Logout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}

	redirectToLogin(w, r)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func redirectToApp(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/app")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}

// ActiveSession returns true when the request carries an authenticated
// session.
func ActiveSession(r *http.Request) bool {
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionAuthenticatedKey) &&
		sessionManager.GetInt(r.Context(), sessionPlayerIDKey) > 0
}
