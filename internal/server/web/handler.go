package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/careermind/internal/server/middleware"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	"github.com/IvanChernomyrdin/careermind/internal/server/page"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// SessionDropper удаляет браузерную сессию (см. service.SessionService).
type SessionDropper interface {
	Drop(ctx context.Context, token string) error
}

// Handler — HTTP-обработчики страниц.
//
// Все методы, кроме Asset и Healthz, ожидают сессию в контексте
// (middleware.SessionMiddleware) и вызываются под её мьютексом.
type Handler struct {
	Ctrl     *page.Controller
	Pages    *Pages
	Assets   Assets
	Sessions SessionDropper
	Cookie   middleware.SessionOptions
	Log      *logger.HTTPLogger
}

// NewHandler создаёт Handler. sessions и cookie нужны для выхода:
// сессия удаляется на сервере, cookie в браузере.
func NewHandler(ctrl *page.Controller, pages *Pages, assets Assets, sessions SessionDropper, cookie middleware.SessionOptions, log *logger.HTTPLogger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{Ctrl: ctrl, Pages: pages, Assets: assets, Sessions: sessions, Cookie: cookie, Log: log}
}

// Index — GET /: текущая страница сессии.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok {
		return
	}
	h.render(w, h.Ctrl.Render(st, page.ViewOverview))
}

// Dashboard — GET /dashboard?view=...
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok {
		return
	}
	h.render(w, h.Ctrl.Render(st, page.ParseView(r.URL.Query().Get("view"))))
}

// Login — POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok || !h.parseForm(w, r) {
		return
	}
	if err := h.Ctrl.SubmitLogin(r.Context(), st, r.PostForm.Get("email"), r.PostForm.Get("password")); err != nil {
		h.internal(w, "login", err)
		return
	}
	redirectHome(w, r)
}

// Register — POST /register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok || !h.parseForm(w, r) {
		return
	}
	f := r.PostForm
	if err := h.Ctrl.SubmitRegister(r.Context(), st, f.Get("name"), f.Get("email"), f.Get("password"), f.Get("confirm")); err != nil {
		h.internal(w, "register", err)
		return
	}
	redirectHome(w, r)
}

// GoToRegister — POST /nav/register.
func (h *Handler) GoToRegister(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok {
		return
	}
	h.Ctrl.GoToRegister(st)
	redirectHome(w, r)
}

// BackToLogin — POST /nav/login.
func (h *Handler) BackToLogin(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok {
		return
	}
	h.Ctrl.BackToLogin(st)
	redirectHome(w, r)
}

// Logout — POST /logout.
//
// Состояние сбрасывается, сессия удаляется, следующий запрос получит новую.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok {
		return
	}
	h.Ctrl.Logout(st)

	if token, ok := middleware.SessionTokenFromContext(r.Context()); ok && h.Sessions != nil {
		if err := h.Sessions.Drop(r.Context(), token); err != nil {
			h.internal(w, "logout", err)
			return
		}
	}
	middleware.ExpireSessionCookie(w, h.Cookie)
	redirectHome(w, r)
}

// Resume — POST /dashboard/resume.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok || !h.parseForm(w, r) {
		return
	}
	f := r.PostForm
	scr, err := h.Ctrl.SubmitResume(st, shared.ResumeRequest{
		AcademicStatus:  f.Get("academic_status"),
		Department:      f.Get("department"),
		TechnicalSkills: f.Get("technical_skills"),
		SoftSkills:      f.Get("soft_skills"),
		Projects:        f.Get("projects"),
		Certifications:  f.Get("certifications"),
		Experience:      f.Get("experience"),
	})
	if err != nil {
		h.internal(w, "resume", err)
		return
	}
	h.render(w, scr)
}

// Internships — POST /dashboard/internships.
func (h *Handler) Internships(w http.ResponseWriter, r *http.Request) {
	st, ok := h.state(w, r)
	if !ok || !h.parseForm(w, r) {
		return
	}
	scr, err := h.Ctrl.SubmitInternships(st, shared.InternshipRequest{
		AcademicStatus: r.PostForm.Get("academic_status"),
		Skills:         r.PostForm.Get("skills"),
	})
	if err != nil {
		h.internal(w, "internships", err)
		return
	}
	h.render(w, scr)
}

// Asset — GET /assets/{name}.
func (h *Handler) Asset(w http.ResponseWriter, r *http.Request) {
	h.Assets.Serve(w, r, chi.URLParam(r, "name"))
}

// Healthz — GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) (*models.State, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.Log.Error("no session in request context", zap.String("uri", r.RequestURI))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return &sess.State, true
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) render(w http.ResponseWriter, scr page.Screen) {
	if err := h.Pages.Write(w, scr, h.Assets.Available()); err != nil {
		h.internal(w, "render", err)
	}
}

func (h *Handler) internal(w http.ResponseWriter, op string, err error) {
	h.Log.Error(op+" failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
