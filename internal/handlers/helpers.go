package handlers

import (
	"TabHome/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// writeJSON сериализует ответ. Ошибка кодирования уже не чинится:
// заголовки отправлены.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт текст ошибки рядом с вызвавшей её формой.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusForError переводит ошибку сервиса в HTTP-статус.
func statusForError(err error) int {
	switch {
	case service.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrBuiltinProtected):
		return http.StatusForbidden
	case errors.Is(err, service.ErrLoginTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// serviceError отдаёт ошибку сервиса с подходящим статусом.
// Текст отдаётся как есть, внутренние ошибки маскируются.
func serviceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
