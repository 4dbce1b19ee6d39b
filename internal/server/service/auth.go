package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/careermind/internal/server/config"
	"github.com/IvanChernomyrdin/careermind/internal/server/crypto"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
)

// AuthService реализует регистрацию и вход.
//
// Ответственность:
//   - регистрация пользователей (проверка полей, хэш пароля)
//   - аутентификация (логин)
//   - выпуск access токенов для JSON API
//
// Поля сравниваются как есть: без обрезки пробелов и смены регистра.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// JWT возвращает параметры проверки access токенов (нужны middleware API).
func (s *AuthService) JWT() crypto.JWTConfig {
	return s.jwt
}

// Register регистрирует нового пользователя.
//
// Проверки идут в таком порядке:
//   - все четыре поля непустые, иначе ErrInvalidInput
//   - пароль совпадает с подтверждением, иначе ErrPasswordMismatch
//   - email ещё не занят, иначе ErrAlreadyExists
//
// Строка из одних пробелов считается заполненной.
func (s *AuthService) Register(ctx context.Context, name, email, password, confirm string) (uuid.UUID, error) {
	if name == "" || email == "" || password == "" || confirm == "" {
		return uuid.Nil, serr.ErrInvalidInput
	}
	if password != confirm {
		return uuid.Nil, serr.ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	return s.users.Create(ctx, models.User{Email: email, Name: name, PasswordHash: hash})
}

// Login проверяет email и пароль.
//
// Не раскрывает факт существования email: и неизвестный email,
// и неверный пароль дают ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, serr.ErrInvalidCredentials
		}
		return models.User{}, err
	}

	ok, err := crypto.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}
	if !ok {
		return models.User{}, serr.ErrInvalidCredentials
	}
	return u, nil
}

// IssueToken выпускает access токен JSON API для пользователя.
func (s *AuthService) IssueToken(u models.User) (string, error) {
	access, err := crypto.NewAccessToken(u.Email, u.Name, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return access, nil
}
