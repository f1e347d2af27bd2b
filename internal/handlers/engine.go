package handlers

import (
	"TabHome/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EngineHandler — поисковые системы пользователя.
type EngineHandler struct {
	Engines *service.EngineService
	Logger  *zap.SugaredLogger
}

// NewEngineHandler создаёт хендлер поисковиков
func NewEngineHandler(engines *service.EngineService, logger *zap.SugaredLogger) *EngineHandler {
	return &EngineHandler{Engines: engines, Logger: logger}
}

// List отдаёт поисковики пользователя. Перед чтением досевает
// встроенный набор для пустого аккаунта и зачищает дубли, поэтому
// клиент всегда видит согласованный список.
func (h *EngineHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if seeded, err := h.Engines.EnsureDefaults(r.Context(), uid); err != nil {
		h.Logger.Warnw("engines seed", "error", err)
	} else if seeded > 0 {
		h.Logger.Infow("engines seeded", "user_id", uid, "count", seeded)
	}
	if removed, err := h.Engines.CleanupDuplicates(r.Context(), uid); err != nil {
		h.Logger.Warnw("engines dedup", "error", err)
	} else if removed > 0 {
		h.Logger.Infow("duplicate engines removed", "user_id", uid, "count", removed)
	}

	list, err := h.Engines.List(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("engines list", "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Add создаёт пользовательский (не встроенный) поисковик.
func (h *EngineHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.AddEngineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	e, err := h.Engines.Add(r.Context(), uid, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// Update меняет поля поисковика. Переименование встроенного запрещено.
func (h *EngineHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateEngineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Engines.Update(r.Context(), uid, chi.URLParam(r, "id"), req); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет пользовательский поисковик. Встроенные защищены.
func (h *EngineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Engines.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetDefault делает поисковик единственным дефолтным.
func (h *EngineHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Engines.SetDefault(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cleanup принудительно зачищает дубли и отчитывается числом удалённых.
func (h *EngineHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	removed, err := h.Engines.CleanupDuplicates(r.Context(), uid)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}
