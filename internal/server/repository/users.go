// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Хранилища живут в памяти процесса и теряются при перезапуске.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
)

// UsersRepository — потокобезопасный справочник пользователей email -> User.
//
// Один справочник на процесс: регистрация видна всем сессиям.
type UsersRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUsersRepository создаёт пустой справочник.
func NewUsersRepository() *UsersRepository {
	return &UsersRepository{users: make(map[string]models.User)}
}

// Create добавляет пользователя.
//
// Проверка наличия email и вставка выполняются под одной блокировкой,
// поэтому email встречается в справочнике не больше одного раза.
// Возвращает id пользователя или ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, u models.User) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Email]; ok {
		return uuid.Nil, serr.ErrAlreadyExists
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.Email] = u
	return u.ID, nil
}

// GetByEmail возвращает пользователя по email (точное совпадение) или ErrNotFound.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return u, nil
}

// Count возвращает число зарегистрированных пользователей.
func (r *UsersRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
