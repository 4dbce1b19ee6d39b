// HTTP-хендлеры регистрации, логина и текущего пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/careermind/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON, пустые поля или пароли не совпадают;
//   - 409 Conflict: пользователь уже существует;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	id, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrPasswordMismatch):
			WriteError(w, http.StatusBadRequest, serr.ErrPasswordMismatch)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusConflict, serr.ErrAlreadyExists)
		default:
			h.Log.Error("register failed", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.Log.LogEvent("registered", req.Email, zap.String("via", "api"))
	writeJSON(w, http.StatusCreated, models.RegisterResponse{
		UserID:  id.String(),
		Message: "Registration successful. Please login.",
	})
}

// Login обрабатывает вход пользователя и выдачу access токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	u, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, serr.ErrInvalidCredentials) {
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
			return
		}
		h.Log.Error("login failed", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	access, err := h.Svc.Auth.IssueToken(u)
	if err != nil {
		h.Log.Error("issue token failed", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	h.Log.LogEvent("logged_in", u.Email, zap.String("via", "api"))
	writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: access, Name: u.Name})
}

// Me возвращает email и имя из access токена.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email, name, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, models.MeResponse{Email: email, Name: name})
}
