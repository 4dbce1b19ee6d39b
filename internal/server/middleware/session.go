package middleware

import (
	"context"
	"net/http"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	"go.uber.org/zap"
)

// ключи контекста для браузерной сессии и её токена
const (
	sessionKey      ctxKey = "session"
	sessionTokenKey ctxKey = "session_token"
)

// SessionAcquirer выдаёт сессию по токену из cookie (см. service.SessionService).
type SessionAcquirer interface {
	Acquire(ctx context.Context, token string) (string, *models.Session, bool, error)
}

// SessionOptions — параметры cookie сессии.
type SessionOptions struct {
	CookieName string
	Secure     bool // true при включённом TLS
}

// SessionFromContext возвращает сессию текущего запроса.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*models.Session)
	return s, ok
}

// SessionTokenFromContext возвращает токен сессии текущего запроса (значение cookie).
func SessionTokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(sessionTokenKey).(string)
	return t, ok && t != ""
}

// ExpireSessionCookie просит браузер удалить cookie сессии.
func ExpireSessionCookie(w http.ResponseWriter, opts SessionOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware загружает или создаёт браузерную сессию.
//
// Мьютекс сессии держится до конца обработки запроса: событие и отрисовка
// одной сессии не перемешиваются с другим запросом той же сессии.
func SessionMiddleware(sessions SessionAcquirer, opts SessionOptions, log *logger.HTTPLogger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(opts.CookieName); err == nil {
				token = c.Value
			}

			token, sess, created, err := sessions.Acquire(r.Context(), token)
			if err != nil {
				log.Error("acquire session", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     opts.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess.Lock()
			defer sess.Unlock()

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			ctx = context.WithValue(ctx, sessionTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
