package tests

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/server/repository"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	repo := repository.NewUsersRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, models.User{Email: "a@x.com", Name: "Ann", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, "hash", got.PasswordHash)
	require.False(t, got.CreatedAt.IsZero())
}

// Такой пользователь уже есть: справочник не меняется
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	repo := repository.NewUsersRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{Email: "a@x.com", Name: "Ann", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.User{Email: "a@x.com", Name: "Bob", PasswordHash: "h2"})
	require.ErrorIs(t, err, serr.ErrAlreadyExists)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, 1, repo.Count())
}

// Пользователь не найден
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	repo := repository.NewUsersRepository()

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// email сравнивается точно
func TestUsersRepository_GetByEmail_ExactKey(t *testing.T) {
	repo := repository.NewUsersRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{Email: "a@x.com", Name: "Ann", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "A@X.com")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Отменённый контекст
func TestUsersRepository_Create_CanceledContext(t *testing.T) {
	repo := repository.NewUsersRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, models.User{Email: "a@x.com"})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, repo.Count())
}

// Параллельная регистрация одного email: успешна ровно одна
func TestUsersRepository_Create_ConcurrentSameEmail(t *testing.T) {
	repo := repository.NewUsersRepository()
	ctx := context.Background()

	const n = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, models.User{Email: "race@x.com", Name: "R"}); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, success)
	require.Equal(t, 1, repo.Count())
}
