package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
)

// SessionService выдаёт браузерные сессии по cookie.
type SessionService struct {
	sessions SessionsRepo
}

// NewSessionService создаёт SessionService.
func NewSessionService(sessions SessionsRepo) *SessionService {
	return &SessionService{sessions: sessions}
}

// Acquire возвращает сессию по токену из cookie.
//
// Пустой, неизвестный или просроченный токен означает новую сессию:
// тогда возвращается новый токен и created=true, его нужно положить в cookie.
func (s *SessionService) Acquire(ctx context.Context, token string) (string, *models.Session, bool, error) {
	if token != "" {
		sess, err := s.sessions.Get(ctx, token)
		if err == nil {
			return token, sess, false, nil
		}
		if !errors.Is(err, serr.ErrNotFound) {
			return "", nil, false, err
		}
	}

	token, sess, err := s.sessions.Create(ctx)
	if err != nil {
		return "", nil, false, err
	}
	return token, sess, true, nil
}

// Drop удаляет сессию. Неизвестный токен не ошибка.
func (s *SessionService) Drop(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.sessions.Delete(ctx, token)
	if errors.Is(err, serr.ErrNotFound) {
		return nil
	}
	return err
}
