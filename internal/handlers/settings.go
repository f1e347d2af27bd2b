package handlers

import (
	"TabHome/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SettingsHandler — настройки домашней страницы.
type SettingsHandler struct {
	Settings *service.SettingsService
	Logger   *zap.SugaredLogger
}

// NewSettingsHandler создаёт хендлер настроек
func NewSettingsHandler(settings *service.SettingsService, logger *zap.SugaredLogger) *SettingsHandler {
	return &SettingsHandler{Settings: settings, Logger: logger}
}

// Get отдаёт настройки, создавая запись с дефолтами при первом обращении.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	s, err := h.Settings.Get(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("settings get", "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Update применяет частичное обновление настроек.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Settings.Update(r.Context(), uid, req); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
