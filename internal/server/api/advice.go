// HTTP-хендлеры проверок дашборда
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

// Resume проверяет форму резюме.
//
// Ответы:
//   - 200 OK: отчёт {messages};
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: нет токена;
//   - 422 Unprocessable Entity: неизвестный academic_status.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	email, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req models.ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	resp, err := h.Svc.Advice.Resume(email, req)
	if err != nil {
		h.adviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Internships подбирает стажировки.
//
// Ответы те же, что у Resume; в отчёте дополнительно suggestions и platforms.
func (h *Handler) Internships(w http.ResponseWriter, r *http.Request) {
	email, _, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req models.InternshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	resp, err := h.Svc.Advice.Internships(email, req)
	if err != nil {
		h.adviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) adviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, serr.ErrUnknownStatus) {
		WriteError(w, http.StatusUnprocessableEntity, serr.ErrUnknownStatus)
		return
	}
	h.Log.Error("advice failed", zap.Error(err))
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
}
