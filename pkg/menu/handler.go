package menu

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mchmarny/navmenu/pkg/metric"
)

// Handler returns an HTTP handler serving the menu held by store.
//
// Query parameters:
//   - kind: ul, ol, div or any tag name (defaults to defaultKind)
//   - format: html (default) or json, the latter returning the nested tree
func Handler(store *Store, renders metric.IncrementalCounter, defaultKind Kind) http.Handler {
	if renders == nil {
		renders = metric.Noop{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		b := store.Load()

		if r.URL.Query().Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if err := json.NewEncoder(w).Encode(b.Tree()); err != nil {
				slog.Error("failed to encode menu", "error", err)
			}
			return
		}

		kind := defaultKind
		if k := r.URL.Query().Get("kind"); k != "" {
			kind = Kind(k)
		}

		out, err := b.As(kind, nil)
		if err != nil {
			renders.Increment(string(kind), metric.OutcomeError)
			status := http.StatusInternalServerError
			if errors.Is(err, ErrInvalidKind) {
				status = http.StatusBadRequest
			}
			slog.Error("failed to render menu", "kind", kind, "error", err)
			http.Error(w, http.StatusText(status), status)
			return
		}
		renders.Increment(string(kind), metric.OutcomeSuccess)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(out)); err != nil {
			slog.Error("failed to write menu response", "error", err)
			return
		}

		slog.Debug("menu response sent",
			"kind", kind,
			"items", b.Len(),
			"status", http.StatusOK,
		)
	})
}
