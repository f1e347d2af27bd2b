package handlers

import (
	"TabHome/internal/middleware"
	"TabHome/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookmarkHandler — CRUD закладок текущего пользователя.
type BookmarkHandler struct {
	Bookmarks *service.BookmarkService
	Logger    *zap.SugaredLogger
}

// NewBookmarkHandler создаёт хендлер закладок
func NewBookmarkHandler(bookmarks *service.BookmarkService, logger *zap.SugaredLogger) *BookmarkHandler {
	return &BookmarkHandler{Bookmarks: bookmarks, Logger: logger}
}

// requireUser достаёт ID пользователя из контекста или отвечает 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return uid, true
}

// List отдаёт закладки пользователя, отсортированные по позиции.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.Bookmarks.List(r.Context(), uid)
	if err != nil {
		h.Logger.Errorw("bookmarks list", "error", err)
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Add создаёт закладку в конце списка.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	b, err := h.Bookmarks.Add(r.Context(), uid, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// Update переписывает поля закладки.
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Bookmarks.Update(r.Context(), uid, chi.URLParam(r, "id"), req); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete удаляет закладку.
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Bookmarks.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type moveRequest struct {
	FolderID *string `json:"folder_id"`
}

// MoveToFolder переносит закладку в папку (null — в «без категории»).
func (h *BookmarkHandler) MoveToFolder(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Bookmarks.MoveToFolder(r.Context(), uid, chi.URLParam(r, "id"), req.FolderID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
