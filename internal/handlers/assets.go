package handlers

import (
	"io"
	"net/http"

	"neuralrecon/internal/cache"
	applog "neuralrecon/internal/log"
)

// AssetProxy serves static assets through the offline cache worker. Cached
// entries are returned immediately and revalidated in the background; misses
// wait on the upstream origin.
func AssetProxy(worker *cache.Worker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		upstream, err := http.NewRequestWithContext(r.Context(), http.MethodGet, worker.Rewrite(r.URL).String(), nil)
		if err != nil {
			applog.Error(r.Context(), "failed to build asset request", "path", r.URL.Path, "error", err)
			http.Error(w, "bad asset request", http.StatusBadRequest)
			return
		}

		resp, err := worker.Fetch(r.Context(), upstream)
		if err != nil {
			applog.Warn(r.Context(), "asset unavailable", "path", r.URL.Path, "error", err)
			http.Error(w, "asset origin unreachable", http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(resp.StatusCode)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, resp.Body); err != nil {
			applog.Debug(r.Context(), "failed to stream asset body", "path", r.URL.Path, "error", err)
		}
	})
}
