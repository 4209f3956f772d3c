package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler сигнализирует балансировщику о готовности принимать трафик.
// Во время shutdown отвечает 503, чтобы новые запросы ушли на другие
// инстансы до остановки сервера.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{isShuttingDown: isShuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
