package handlers

import (
	"TabHome/internal/metadata"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// ProxyHandler обходит CORS: скачивает чужую страницу на сервере и
// отдаёт клиенту разобранные метаданные вместе с началом HTML.
type ProxyHandler struct {
	Scraper *metadata.Scraper
	Logger  *zap.SugaredLogger
}

// NewProxyHandler создаёт хендлер прокси
func NewProxyHandler(scraper *metadata.Scraper, logger *zap.SugaredLogger) *ProxyHandler {
	return &ProxyHandler{Scraper: scraper, Logger: logger}
}

// Proxy скачивает страницу по url из query. Эндпоинт публичный:
// авторизация не требуется, как и для регистрации.
func (h *ProxyHandler) Proxy(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		writeError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	info, err := h.Scraper.Fetch(r.Context(), raw)
	if err != nil {
		var statusErr *metadata.StatusError
		switch {
		case errors.Is(err, metadata.ErrTimeout):
			writeError(w, http.StatusRequestTimeout, "Request timeout")
		case errors.As(err, &statusErr):
			writeError(w, statusErr.Code, fmt.Sprintf("Failed to fetch: %d", statusErr.Code))
		default:
			h.Logger.Warnw("proxy fetch", "url", raw, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, info)
}
