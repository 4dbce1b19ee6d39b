package service

import (
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/careermind/internal/server/advice"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// AdviceService запускает проверки форм дашборда и пишет событие в лог.
// Общий для страниц и JSON API.
type AdviceService struct {
	log *logger.HTTPLogger
}

// NewAdviceService создаёт AdviceService. nil-логгер заменяется на Nop.
func NewAdviceService(log *logger.HTTPLogger) *AdviceService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AdviceService{log: log}
}

// Resume проверяет форму резюме от имени email.
func (s *AdviceService) Resume(email string, req models.ResumeRequest) (models.AdviceResponse, error) {
	r, err := advice.AnalyzeResume(advice.ResumeForm{
		AcademicStatus:  req.AcademicStatus,
		Department:      req.Department,
		TechnicalSkills: req.TechnicalSkills,
		SoftSkills:      req.SoftSkills,
		Projects:        req.Projects,
		Certifications:  req.Certifications,
		Experience:      req.Experience,
	})
	if err != nil {
		return models.AdviceResponse{}, err
	}
	s.log.LogEvent("resume_analyzed", email,
		zap.String("academic_status", req.AcademicStatus),
		zap.Int("messages", len(r.Messages)),
	)
	return toResponse(r), nil
}

// Internships подбирает стажировки от имени email.
func (s *AdviceService) Internships(email string, req models.InternshipRequest) (models.AdviceResponse, error) {
	r, err := advice.RecommendInternships(advice.InternshipForm{
		AcademicStatus: req.AcademicStatus,
		Skills:         req.Skills,
	})
	if err != nil {
		return models.AdviceResponse{}, err
	}
	s.log.LogEvent("internships_recommended", email,
		zap.String("academic_status", req.AcademicStatus),
		zap.Strings("suggestions", r.Suggestions),
	)
	return toResponse(r), nil
}

func toResponse(r advice.Report) models.AdviceResponse {
	return models.AdviceResponse{
		Messages:    r.Messages,
		Suggestions: r.Suggestions,
		Platforms:   r.Platforms,
	}
}
