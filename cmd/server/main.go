package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"gorm.io/gorm"

	"neuralrecon/internal/cache"
	"neuralrecon/internal/config"
	"neuralrecon/internal/db"
	"neuralrecon/internal/db/mock"
	"neuralrecon/internal/handlers"
	applog "neuralrecon/internal/log"
	"neuralrecon/internal/server"
	"neuralrecon/internal/theme"
	"neuralrecon/internal/theme/skins"
)

// serverLifecycle abstracts the HTTP server so run can be exercised without
// binding a listener.
type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		return sigCh, func() { signal.Stop(sigCh) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "invalid configuration", "error", err)
		return 1
	}
	if err := setLogLevelFunc(cfg.LogLevel); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		return 1
	}

	database, err := openDatabase(ctx, cfg)
	if err != nil {
		applog.Error(ctx, "failed to initialise database", "error", err)
		return 1
	}

	registry := theme.NewRegistry(skins.Base(), db.NewPreferenceStore(database))
	skins.Install(registry)
	registry.OnChange(func(next, prev *theme.Definition) {
		prevID := ""
		if prev != nil {
			prevID = prev.ID
		}
		applog.Info(ctx, "active skin changed", "theme", next.ID, "previous", prevID)
	})
	registry.LoadSaved(cfg.Theme.Default)

	worker, assets := buildAssetProxy(ctx, cfg, registry)

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database: database,
		Registry: registry,
		Assets:   assets,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	sigCh, cancelSig := subscribeShutdownSig()
	defer cancelSig()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
	case <-sigCh:
		applog.Info(ctx, "shutting down http server")
		if err := srv.Stop(); err != nil {
			applog.Error(ctx, "graceful shutdown failed", "error", err)
			return 1
		}
	}

	if worker != nil {
		worker.Wait()
	}
	return 0
}

// openDatabase connects to the configured postgres instance, or falls back
// to the seeded in-memory database when no URL is set.
func openDatabase(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	if cfg.Database.URL != "" {
		return configureDatabase(cfg.Database)
	}
	applog.Info(ctx, "no database configured, using in-memory mock")
	return newMockDatabaseFunc(ctx)
}

// buildAssetProxy wires the offline cache worker in front of the configured
// asset origin. An empty origin, or an origin that cannot be pre-cached,
// falls back to serving web/static from disk.
func buildAssetProxy(ctx context.Context, cfg config.Config, registry *theme.Registry) (*cache.Worker, http.Handler) {
	if cfg.Assets.Origin == "" {
		return nil, nil
	}

	worker, err := cache.NewWorker(cfg.Assets.CacheVersion, cfg.Assets.Origin, assetManifest(registry), cache.NewStorage(), nil)
	if err != nil {
		applog.Error(ctx, "invalid asset origin, serving assets from disk", "error", err)
		return nil, nil
	}
	if err := worker.Install(ctx); err != nil {
		applog.Error(ctx, "asset pre-cache failed, serving assets from disk", "error", err)
		return nil, nil
	}
	worker.Activate(ctx)
	return worker, handlers.AssetProxy(worker)
}

// assetManifest collects the shared front-end files plus every registered
// skin's sprite sheets.
func assetManifest(registry *theme.Registry) []string {
	seen := map[string]bool{
		"/assets/app.css":              true,
		"/assets/app.js":               true,
		"/assets/manifest.webmanifest": true,
	}
	for _, def := range registry.All() {
		for _, path := range def.Assets.Paths {
			seen[path] = true
		}
		for _, path := range def.Assets.LayerWalls {
			seen[path] = true
		}
	}
	manifest := make([]string, 0, len(seen))
	for path := range seen {
		manifest = append(manifest, path)
	}
	sort.Strings(manifest)
	return manifest
}
