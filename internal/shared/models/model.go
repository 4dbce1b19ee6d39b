// Package models содержит модели JSON API, общие для сервера и CLI-клиента.
package models

// Уровни сообщений, которые показываются пользователю под формой.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Message — одно сообщение для пользователя (успех, подсказка, предупреждение, ошибка).
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// RegisterRequest — запрос на регистрацию.
//
// Используется в:
//
//	POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// RegisterResponse — ответ на успешную регистрацию.
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// LoginRequest — запрос на вход.
//
// Используется в:
//
//	POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse — ответ на успешный вход: access токен и имя пользователя.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Name        string `json:"name"`
}

// MeResponse — информация о текущем пользователе.
type MeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ResumeRequest — поля формы "Resume Improvement".
//
// Используется в:
//
//	POST /api/advice/resume
type ResumeRequest struct {
	AcademicStatus  string `json:"academic_status"`
	Department      string `json:"department"`
	TechnicalSkills string `json:"technical_skills"`
	SoftSkills      string `json:"soft_skills"`
	Projects        string `json:"projects"`
	Certifications  string `json:"certifications"`
	Experience      string `json:"experience"`
}

// InternshipRequest — поля формы "Internship Recommendation".
//
// Используется в:
//
//	POST /api/advice/internships
type InternshipRequest struct {
	AcademicStatus string `json:"academic_status"`
	Skills         string `json:"skills"`
}

// AdviceResponse — результат проверки формы.
//
// Messages — сообщения в порядке показа,
// Suggestions — рекомендованные стажировки (только для internships),
// Platforms — площадки для поиска (только для internships).
type AdviceResponse struct {
	Messages    []Message `json:"messages"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Platforms   []string  `json:"platforms,omitempty"`
}
