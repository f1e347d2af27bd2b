package handlers

import (
	"TabHome/internal/icon"
	"TabHome/internal/metadata"
	"net/http"

	"go.uber.org/zap"
)

// ToolsHandler — вспомогательные эндпоинты: метаданные сайта и
// генерация SVG-иконок для закладок без фавиконки.
type ToolsHandler struct {
	Resolver *metadata.Resolver
	Logger   *zap.SugaredLogger
}

// NewToolsHandler создаёт хендлер утилит
func NewToolsHandler(resolver *metadata.Resolver, logger *zap.SugaredLogger) *ToolsHandler {
	return &ToolsHandler{Resolver: resolver, Logger: logger}
}

// SiteInfo нормализует URL и подбирает к нему заголовок и иконку.
// Не ошибается: при недоступном сайте возвращает эвристический заголовок.
func (h *ToolsHandler) SiteInfo(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	writeJSON(w, http.StatusOK, h.Resolver.Resolve(r.Context(), raw))
}

// GenerateIcon отдаёт data-URI квадратной SVG-иконки с текстом.
func (h *ToolsHandler) GenerateIcon(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	text := r.URL.Query().Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	background := r.URL.Query().Get("background")
	if background == "" {
		background = "#4F46E5"
	}

	writeJSON(w, http.StatusOK, map[string]string{"icon": icon.Generate(text, background)})
}
