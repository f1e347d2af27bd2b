package handlers

import (
	"TabHome/internal/config"
	"TabHome/internal/middleware"
	"TabHome/internal/service"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер user
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Register создаёт пользователя и сразу логинит его через auth-cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		h.Logger.Warnw("Register failed", "login", req.Login, "error", err)
		serviceError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: cookie error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Login: u.Login})
}

// Login проверяет пару логин/пароль и ставит auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: cookie error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Login: u.Login})
}

// Status возвращает состояние авторизации текущего запроса.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]string{"result": fmt.Sprintf("User ID = %d", uid)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "anonymous"})
}
