// Package page реализует контроллер страниц: состояния Login, Register, Dashboard,
// события, которые их меняют, и Render, который строит экран по состоянию.
//
// Контроллер не знает про HTTP. Состояние сессии передаётся ему явно,
// вызывающий держит мьютекс сессии на всё время событие + Render.
package page

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// Тексты сообщений форм логина и регистрации.
const (
	MsgFillAll          = "Please fill all details"
	MsgPasswordMismatch = "Passwords do not match"
	MsgAccountExists    = "Account already exists. Please login."
	MsgRegistered       = "Registration successful. Please login."
	MsgLoginOK          = "Login successful"
	MsgInvalidLogin     = "Invalid email or password"
	MsgUnknownStatus    = "Unknown academic status"
)

// Authenticator — то, что контроллеру нужно от сервиса аутентификации.
type Authenticator interface {
	Register(ctx context.Context, name, email, password, confirm string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (models.User, error)
}

// Advisor — проверки форм дашборда.
type Advisor interface {
	Resume(email string, req shared.ResumeRequest) (shared.AdviceResponse, error)
	Internships(email string, req shared.InternshipRequest) (shared.AdviceResponse, error)
}

// Controller — обработчики событий страниц.
type Controller struct {
	auth   Authenticator
	advice Advisor
	log    *logger.HTTPLogger
}

// New создаёт контроллер. nil-логгер заменяется на Nop.
func New(auth Authenticator, advice Advisor, log *logger.HTTPLogger) *Controller {
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{auth: auth, advice: advice, log: log}
}

// GoToRegister — кнопка "Go to Register" на странице логина.
func (c *Controller) GoToRegister(st *models.State) {
	if st.LoggedIn {
		return
	}
	st.Page = models.PageRegister
}

// BackToLogin — возврат со страницы регистрации на логин.
func (c *Controller) BackToLogin(st *models.State) {
	if st.LoggedIn {
		return
	}
	st.Page = models.PageLogin
}

// SubmitRegister обрабатывает форму регистрации.
//
// Ошибки ввода не фатальны: они кладутся во Flash, пользователь остаётся
// на странице регистрации. Наружу возвращаются только внутренние ошибки.
func (c *Controller) SubmitRegister(ctx context.Context, st *models.State, name, email, password, confirm string) error {
	if st.LoggedIn {
		return nil
	}

	_, err := c.auth.Register(ctx, name, email, password, confirm)
	switch {
	case err == nil:
		st.Page = models.PageLogin
		flash(st, shared.LevelSuccess, MsgRegistered)
		c.log.LogEvent("registered", email, zap.String("name", name))
		return nil
	case errors.Is(err, serr.ErrInvalidInput):
		flash(st, shared.LevelError, MsgFillAll)
	case errors.Is(err, serr.ErrPasswordMismatch):
		flash(st, shared.LevelError, MsgPasswordMismatch)
	case errors.Is(err, serr.ErrAlreadyExists):
		flash(st, shared.LevelError, MsgAccountExists)
	default:
		return err
	}
	st.Page = models.PageRegister
	return nil
}

// SubmitLogin обрабатывает форму логина.
func (c *Controller) SubmitLogin(ctx context.Context, st *models.State, email, password string) error {
	if st.LoggedIn {
		return nil
	}

	u, err := c.auth.Login(ctx, email, password)
	if err != nil {
		if !errors.Is(err, serr.ErrInvalidCredentials) {
			return err
		}
		st.Page = models.PageLogin
		flash(st, shared.LevelError, MsgInvalidLogin)
		c.log.LogEvent("login_failed", email)
		return nil
	}

	st.LoggedIn = true
	st.CurrentUser = u.Name
	st.CurrentEmail = u.Email
	st.Page = models.PageDashboard
	flash(st, shared.LevelSuccess, MsgLoginOK)
	c.log.LogEvent("logged_in", u.Email)
	return nil
}

// Logout сбрасывает сессию на страницу логина, какой бы вид дашборда ни был открыт.
func (c *Controller) Logout(st *models.State) {
	if st.LoggedIn {
		c.log.LogEvent("logged_out", st.CurrentEmail)
	}
	*st = models.NewState()
}

// SubmitResume запускает проверку резюме и возвращает экран с результатом.
// Без входа показывается страница логина. Неизвестный академический статус
// показывается под формой, остальные ошибки возвращаются наружу.
func (c *Controller) SubmitResume(st *models.State, form shared.ResumeRequest) (Screen, error) {
	if !st.LoggedIn {
		return c.Render(st, ViewResume), nil
	}

	resp, err := c.advice.Resume(st.CurrentEmail, form)
	res, err := result(resp, err)
	if err != nil {
		return Screen{}, err
	}
	scr := c.Render(st, ViewResume)
	scr.Resume = form
	scr.Result = res
	return scr, nil
}

// SubmitInternships запускает подбор стажировок и возвращает экран с результатом.
func (c *Controller) SubmitInternships(st *models.State, form shared.InternshipRequest) (Screen, error) {
	if !st.LoggedIn {
		return c.Render(st, ViewInternships), nil
	}

	resp, err := c.advice.Internships(st.CurrentEmail, form)
	res, err := result(resp, err)
	if err != nil {
		return Screen{}, err
	}
	scr := c.Render(st, ViewInternships)
	scr.Internship = form
	scr.Result = res
	return scr, nil
}

func result(resp shared.AdviceResponse, err error) (*shared.AdviceResponse, error) {
	switch {
	case err == nil:
		return &resp, nil
	case errors.Is(err, serr.ErrUnknownStatus):
		return &shared.AdviceResponse{
			Messages: []shared.Message{{Level: shared.LevelError, Text: MsgUnknownStatus}},
		}, nil
	default:
		return nil, err
	}
}

func flash(st *models.State, level, text string) {
	st.Flash = append(st.Flash, shared.Message{Level: level, Text: text})
}
