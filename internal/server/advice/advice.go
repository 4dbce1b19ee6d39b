// Package advice содержит проверки форм дашборда: советы по резюме
// и подбор стажировок по ключевым словам.
//
// Никакой модели здесь нет: только длина текста и наличие подстрок
// без учёта регистра. Все проверки независимы, повторный запуск
// на тех же данных даёт тот же результат.
package advice

import (
	"strings"
	"unicode/utf8"

	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// Академический статус студента.
const (
	StatusFirstYear  = "1st Year"
	StatusSecondYear = "2nd Year"
	StatusThirdYear  = "3rd Year"
	StatusFinalYear  = "Final Year"
	StatusGraduate   = "Graduate"
)

// AcademicStatuses — значения выпадающего списка в порядке показа.
var AcademicStatuses = []string{
	StatusFirstYear,
	StatusSecondYear,
	StatusThirdYear,
	StatusFinalYear,
	StatusGraduate,
}

// Departments — значения списка "Department" формы резюме.
var Departments = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL", "IT", "OTHER"}

// Platforms — площадки, которые всегда перечисляются после подбора стажировок.
var Platforms = []string{"Internshala", "LinkedIn", "Indeed"}

// MinProjectsLength — минимальная длина описания проектов (в символах, без пробелов по краям).
const MinProjectsLength = 20

// Тексты сообщений.
const (
	MsgResumeDone         = "Resume analysis completed"
	MsgFundamentals       = "Focus on fundamentals and mini-projects"
	MsgMoreProjectDetail  = "Add more detailed project descriptions"
	MsgCommunication      = "Improve communication skills"
	MsgAddCertifications  = "Add certifications (NPTEL, Coursera, Udemy)"
	MsgRecommendationDone = "Recommendations generated"
	MsgBeginnerInternship = "Recommended beginner & learning internships"
	MsgUnknownStatus      = "Unknown academic status"
)

// keyword — ключевое слово навыков и соответствующая стажировка.
type keyword struct {
	word       string
	internship string
}

// порядок важен: строки выводятся в этом порядке
var keywords = []keyword{
	{word: "python", internship: "Python Internship"},
	{word: "web", internship: "Web Development Internship"},
	{word: "ml", internship: "Machine Learning Internship"},
}

// ResumeForm — поля формы "Resume Improvement".
//
// Department, TechnicalSkills и Experience собираются формой,
// но в проверках не участвуют.
type ResumeForm struct {
	AcademicStatus  string
	Department      string
	TechnicalSkills string
	SoftSkills      string
	Projects        string
	Certifications  string
	Experience      string
}

// InternshipForm — поля формы "Internship Recommendation".
type InternshipForm struct {
	AcademicStatus string
	Skills         string
}

// Report — результат проверки формы.
type Report struct {
	Messages    []models.Message
	Suggestions []string
	Platforms   []string
}

// ValidStatus сообщает, входит ли статус в список AcademicStatuses.
func ValidStatus(status string) bool {
	for _, s := range AcademicStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsEarlyYear — 1-й или 2-й курс.
func IsEarlyYear(status string) bool {
	return status == StatusFirstYear || status == StatusSecondYear
}

// ContainsKeyword — проверка наличия подстроки без учёта регистра.
func ContainsKeyword(text, word string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(word))
}

// AnalyzeResume проверяет форму резюме.
//
// Всегда начинает с сообщения об успехе, затем добавляет все подходящие советы.
// Неизвестный статус — ErrUnknownStatus, советы при этом не считаются.
func AnalyzeResume(f ResumeForm) (Report, error) {
	if !ValidStatus(f.AcademicStatus) {
		return Report{}, serr.ErrUnknownStatus
	}

	r := Report{Messages: []models.Message{success(MsgResumeDone)}}

	if IsEarlyYear(f.AcademicStatus) {
		r.Messages = append(r.Messages, warning(MsgFundamentals))
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Projects)) < MinProjectsLength {
		r.Messages = append(r.Messages, warning(MsgMoreProjectDetail))
	}
	if !ContainsKeyword(f.SoftSkills, "communication") {
		r.Messages = append(r.Messages, warning(MsgCommunication))
	}
	if strings.TrimSpace(f.Certifications) == "" {
		r.Messages = append(r.Messages, info(MsgAddCertifications))
	}
	return r, nil
}

// RecommendInternships подбирает стажировки по ключевым словам в навыках.
//
// Каждое ключевое слово проверяется отдельно, совпасть может любое подмножество.
// Площадки перечисляются всегда.
func RecommendInternships(f InternshipForm) (Report, error) {
	if !ValidStatus(f.AcademicStatus) {
		return Report{}, serr.ErrUnknownStatus
	}

	r := Report{Messages: []models.Message{success(MsgRecommendationDone)}}

	if IsEarlyYear(f.AcademicStatus) {
		r.Messages = append(r.Messages, info(MsgBeginnerInternship))
	}
	for _, k := range keywords {
		if ContainsKeyword(f.Skills, k.word) {
			r.Suggestions = append(r.Suggestions, k.internship)
		}
	}
	r.Platforms = append([]string(nil), Platforms...)
	return r, nil
}

// Overview — статичный текст вкладки "Dashboard".
func Overview() []string {
	return []string{
		"Resume Improvement",
		"Internship Recommendation",
		"Skill Gap Analysis",
		"Learning Roadmap",
		"For 1st year to Graduates",
	}
}

func success(text string) models.Message { return models.Message{Level: models.LevelSuccess, Text: text} }
func info(text string) models.Message    { return models.Message{Level: models.LevelInfo, Text: text} }
func warning(text string) models.Message { return models.Message{Level: models.LevelWarning, Text: text} }
