// Package http реализует маршрутизацию HTTP-слоя сервера CareerMind.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - браузерные сессии для страниц и проверку JWT для JSON API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/IvanChernomyrdin/careermind/internal/server/api"
	"github.com/IvanChernomyrdin/careermind/internal/server/middleware"
	"github.com/IvanChernomyrdin/careermind/internal/server/web"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
)

// Deps — всё, что нужно роутеру.
type Deps struct {
	API          *api.Handler
	Web          *web.Handler
	Sessions     middleware.SessionAcquirer
	Cookie       middleware.SessionOptions
	Log          *logger.HTTPLogger
	MaxBodyBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и восстановления после паники для всех запросов;
//   - страницы (под сессионной cookie);
//   - публичные эндпоинты /api/auth;
//   - группу защищённых JWT эндпоинтов /api.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(d.Log))
	r.Use(chimw.Recoverer)
	if d.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(d.MaxBodyBytes))
	}

	// без сессии
	r.Get("/healthz", d.Web.Healthz)
	r.Get("/assets/{name}", d.Web.Asset)

	// страницы
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(d.Sessions, d.Cookie, d.Log))

		r.Get("/", d.Web.Index)
		r.Post("/login", d.Web.Login)
		r.Post("/register", d.Web.Register)
		r.Post("/nav/register", d.Web.GoToRegister)
		r.Post("/nav/login", d.Web.BackToLogin)
		r.Post("/logout", d.Web.Logout)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", d.Web.Dashboard)
			r.Post("/resume", d.Web.Resume)
			r.Post("/internships", d.Web.Internships)
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", d.API.Register)
			r.Post("/login", d.API.Login)
		})
		// защищены пути
		r.Group(func(r chi.Router) {
			// проверка access токена
			r.Use(d.API.Verifier.AuthMiddleware())

			r.Get("/me", d.API.Me)
			r.Post("/advice/resume", d.API.Resume)
			r.Post("/advice/internships", d.API.Internships)
		})
	})

	return r
}
