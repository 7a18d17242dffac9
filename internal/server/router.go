package server

import (
	"context"
	"net/http"

	"neuralrecon/internal/handlers"
	applog "neuralrecon/internal/log"
)

func newRouter(assets http.Handler) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.Handle("/app", handlers.RequireAuthentication(http.HandlerFunc(handlers.Shell)))
	mux.Handle("/app/", handlers.RequireAuthentication(http.HandlerFunc(handlers.Shell)))
	mux.Handle("/app/preferences/update", handlers.RequireAuthentication(http.HandlerFunc(handlers.UpdatePreferences)))
	applog.Debug(context.Background(), "route registered", "path", "/app", "protected", true)

	// The generated stylesheet is registered before the asset handler so the
	// active skin's variables are never served stale from the cache.
	mux.HandleFunc("/assets/theme.css", handlers.ThemeCSS)
	if assets == nil {
		assets = http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static")))
	}
	mux.Handle("/assets/", assets)
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)

	mux.HandleFunc("/", handlers.Home)
	return mux
}
