package page

import (
	"github.com/IvanChernomyrdin/careermind/internal/server/advice"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// Title и Footer — общие для всех страниц.
const (
	Title  = "DKS CareerMind AI"
	Footer = "© DKS CareerMind AI | Second year Academic Project"
)

// View — вкладка дашборда. Не хранится в сессии, берётся из запроса.
type View string

const (
	ViewOverview    View = "overview"
	ViewResume      View = "resume"
	ViewInternships View = "internships"
)

// ParseView переводит значение из query в View. Неизвестное значение — Overview.
func ParseView(s string) View {
	switch View(s) {
	case ViewResume, ViewInternships:
		return View(s)
	default:
		return ViewOverview
	}
}

// Screen — всё, что нужно шаблону для отрисовки одной страницы.
type Screen struct {
	Page     models.Page
	Title    string
	Footer   string
	User     string
	View     View
	Messages []shared.Message

	// заполняются только для дашборда
	Overview    []string
	Statuses    []string
	Departments []string
	Resume      shared.ResumeRequest
	Internship  shared.InternshipRequest
	Result      *shared.AdviceResponse
}

// Render строит экран по текущему состоянию.
//
// Dashboard, если пользователь вошёл, иначе Register, если page = register,
// иначе Login. Flash отдаётся в экран и очищается.
func (c *Controller) Render(st *models.State, view View) Screen {
	scr := Screen{
		Title:    Title,
		Footer:   Footer,
		Messages: st.Flash,
	}
	st.Flash = nil

	switch {
	case st.LoggedIn:
		scr.Page = models.PageDashboard
		scr.User = st.CurrentUser
		scr.View = ParseView(string(view))
		scr.Overview = advice.Overview()
		scr.Statuses = advice.AcademicStatuses
		scr.Departments = advice.Departments
	case st.Page == models.PageRegister:
		scr.Page = models.PageRegister
	default:
		scr.Page = models.PageLogin
	}
	return scr
}
