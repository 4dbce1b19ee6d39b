package repository

import (
	"context"
	"sync"
	"time"

	"github.com/IvanChernomyrdin/careermind/internal/server/crypto"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
)

// SessionsRepository хранит состояния браузерных сессий.
//
// Ключ — sha256 от значения cookie, сам токен не хранится.
// Сессия живёт, пока к ней обращаются чаще, чем раз в ttl;
// просроченные удаляются лениво (Get и Sweep при Create).
type SessionsRepository struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*models.Session
}

// NewSessionsRepository создаёт пустое хранилище сессий с временем простоя ttl.
func NewSessionsRepository(ttl time.Duration) *SessionsRepository {
	return &SessionsRepository{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*models.Session),
	}
}

// WithClock подменяет источник времени (для тестов).
func (r *SessionsRepository) WithClock(now func() time.Time) *SessionsRepository {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
	return r
}

// Create заводит новую сессию с начальным состоянием.
//
// Возвращает токен для cookie и саму сессию.
func (r *SessionsRepository) Create(ctx context.Context) (string, *models.Session, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	token, err := crypto.NewSessionToken()
	if err != nil {
		return "", nil, serr.ErrInternal
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweepLocked(now)

	sess := models.NewSession(now.Add(r.ttl))
	r.sessions[string(crypto.HashSessionToken(token))] = sess
	return token, sess, nil
}

// Get возвращает сессию по токену и продлевает её.
//
// Ошибки:
//   - ErrNotFound если токен неизвестен или сессия просрочена
func (r *SessionsRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, serr.ErrNotFound
	}

	key := string(crypto.HashSessionToken(token))

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[key]
	if !ok {
		return nil, serr.ErrNotFound
	}

	now := r.now()
	if !now.Before(sess.ExpiresAt) {
		delete(r.sessions, key)
		return nil, serr.ErrNotFound
	}
	sess.ExpiresAt = now.Add(r.ttl)
	return sess, nil
}

// Delete удаляет сессию. Удаление неизвестной сессии не ошибка.
func (r *SessionsRepository) Delete(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.sessions, string(crypto.HashSessionToken(token)))
	r.mu.Unlock()
	return nil
}

// Sweep удаляет все сессии, просроченные на момент now, и возвращает их число.
func (r *SessionsRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(now)
}

// Len возвращает число хранимых сессий (включая ещё не вычищенные просроченные).
func (r *SessionsRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *SessionsRepository) sweepLocked(now time.Time) int {
	n := 0
	for key, sess := range r.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(r.sessions, key)
			n++
		}
	}
	return n
}
