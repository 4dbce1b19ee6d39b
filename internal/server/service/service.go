// Package service содержит бизнес-логику приложения CareerMind.
// Это прослойка между обработчиками (web, api) и хранилищами (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mock_repos.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/careermind/internal/server/config"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Sessions SessionsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Advice   *AdviceService
	Sessions *SessionService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config, log *logger.HTTPLogger) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Advice:   NewAdviceService(log),
		Sessions: NewSessionService(repos.Sessions),
	}
}

// UsersRepo — справочник пользователей (нужен для register/login).
type UsersRepo interface {
	Create(ctx context.Context, u models.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionsRepo — хранилище браузерных сессий.
type SessionsRepo interface {
	Create(ctx context.Context) (string, *models.Session, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
