// Package crypto содержит криптографические примитивы сервера CareerMind.
//
// В частности, пакет отвечает за:
//   - генерацию, подпись и проверку JWT access-токенов JSON API;
//   - хэширование паролей (argon2id);
//   - токены браузерных сессий.
package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// AccessClaims — claims access-токена: email пользователя в sub и имя для приветствия.
type AccessClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (email)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
func NewAccessToken(email, name string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = []string{cfg.Audience}
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись, срок жизни, issuer и audience токена.
//
// Пустые Issuer/Audience в cfg означают "не проверять".
// Возвращает ErrTokenExpired или ErrTokenInvalid.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (*AccessClaims, error) {
	claims := &AccessClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, ErrTokenInvalid
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return nil, ErrTokenInvalid
		}
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
