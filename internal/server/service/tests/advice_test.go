package tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/careermind/internal/server/service"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/logger"
	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

func TestAdviceService_Internships(t *testing.T) {
	svc := service.NewAdviceService(logger.NewNop())

	resp, err := svc.Internships("a@x.com", models.InternshipRequest{
		AcademicStatus: "3rd Year",
		Skills:         "I know python and web dev",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Python Internship", "Web Development Internship"}, resp.Suggestions)
	require.Equal(t, []string{"Internshala", "LinkedIn", "Indeed"}, resp.Platforms)
}

func TestAdviceService_Resume(t *testing.T) {
	svc := service.NewAdviceService(nil)

	resp, err := svc.Resume("a@x.com", models.ResumeRequest{
		AcademicStatus: "Graduate",
		Projects:       "Inventory system with REST API",
		SoftSkills:     "communication",
		Certifications: "Udemy",
	})
	require.NoError(t, err)
	require.Equal(t, []models.Message{{Level: models.LevelSuccess, Text: "Resume analysis completed"}}, resp.Messages)
	require.Empty(t, resp.Suggestions)
}

func TestAdviceService_UnknownStatus(t *testing.T) {
	svc := service.NewAdviceService(nil)

	_, err := svc.Resume("a@x.com", models.ResumeRequest{AcademicStatus: "4th Year"})
	require.ErrorIs(t, err, serr.ErrUnknownStatus)

	_, err = svc.Internships("a@x.com", models.InternshipRequest{})
	require.ErrorIs(t, err, serr.ErrUnknownStatus)
}
