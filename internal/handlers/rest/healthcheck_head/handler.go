package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	isShuttingDown *atomic.Bool
	dependencies   map[string]Pinger
}

func New(isShuttingDown *atomic.Bool, dependencies map[string]Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		dependencies:   dependencies,
	}
}

// ServeHTTP отвечает 204, пока сервис не останавливается и все зависимости отвечают.
// Имя первой недоступной зависимости попадает в заголовок X-Unhealthy.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for name, dep := range h.dependencies {
		if err := dep.Ping(ctx); err != nil {
			w.Header().Set("X-Unhealthy", name)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
