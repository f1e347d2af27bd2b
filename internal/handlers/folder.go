package handlers

import (
	"TabHome/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FolderHandler — CRUD папок закладок.
type FolderHandler struct {
	Folders *service.FolderService
	Logger  *zap.SugaredLogger
}

// NewFolderHandler создаёт хендлер папок
func NewFolderHandler(folders *service.FolderService, logger *zap.SugaredLogger) *FolderHandler {
	return &FolderHandler{Folders: folders, Logger: logger}
}

// List отдаёт папки пользователя по позициям.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.Folders.List(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("folders list", "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Add создаёт папку в конце списка.
func (h *FolderHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.AddFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	f, err := h.Folders.Add(r.Context(), uid, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// Update переписывает имя, цвет и иконку папки.
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Folders.Update(r.Context(), uid, chi.URLParam(r, "id"), req); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет папку; её закладки остаются без категории.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Folders.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
