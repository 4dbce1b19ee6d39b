package models

import (
	"sync"
	"time"

	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// Page — страница, на которой находится сессия.
type Page string

const (
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageDashboard Page = "dashboard"
)

// State — состояние одной браузерной сессии.
//
// Меняется только обработчиками событий контроллера страниц,
// Flash показывается один раз при ближайшей отрисовке.
type State struct {
	LoggedIn     bool
	CurrentUser  string
	CurrentEmail string
	Page         Page
	Flash        []shared.Message
}

// NewState возвращает начальное состояние: не залогинен, страница логина.
func NewState() State {
	return State{Page: PageLogin}
}

// Session — состояние плюс мьютекс.
//
// Мьютекс держится на всё взаимодействие (изменение + отрисовка),
// поэтому два запроса одной сессии не перемешиваются.
type Session struct {
	mu        sync.Mutex
	State     State
	ExpiresAt time.Time
}

// NewSession создаёт сессию с начальным состоянием.
func NewSession(expiresAt time.Time) *Session {
	return &Session{State: NewState(), ExpiresAt: expiresAt}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }
