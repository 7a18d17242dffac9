package handlers

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"neuralrecon/internal/theme"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	registry       *theme.Registry
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB, reg *theme.Registry) {
	sessionManager = sm
	database = db
	registry = reg
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}
