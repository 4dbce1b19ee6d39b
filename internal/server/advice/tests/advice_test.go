package tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/careermind/internal/server/advice"
	serr "github.com/IvanChernomyrdin/careermind/internal/shared/errors"
	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

func texts(msgs []models.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func TestAnalyzeResume_AllWarningsForFirstYear(t *testing.T) {
	r, err := advice.AnalyzeResume(advice.ResumeForm{
		AcademicStatus: advice.StatusFirstYear,
		Projects:       "todo app",
		SoftSkills:     "teamwork",
	})
	require.NoError(t, err)

	require.Equal(t, []models.Message{
		{Level: models.LevelSuccess, Text: advice.MsgResumeDone},
		{Level: models.LevelWarning, Text: advice.MsgFundamentals},
		{Level: models.LevelWarning, Text: advice.MsgMoreProjectDetail},
		{Level: models.LevelWarning, Text: advice.MsgCommunication},
		{Level: models.LevelInfo, Text: advice.MsgAddCertifications},
	}, r.Messages)
	require.Empty(t, r.Suggestions)
	require.Empty(t, r.Platforms)
}

func TestAnalyzeResume_OnlySuccessForStrongGraduate(t *testing.T) {
	r, err := advice.AnalyzeResume(advice.ResumeForm{
		AcademicStatus: advice.StatusGraduate,
		Projects:       "Built a distributed key-value store in Go",
		SoftSkills:     "Strong COMMUNICATION and leadership",
		Certifications: "Coursera ML",
	})
	require.NoError(t, err)
	require.Equal(t, []string{advice.MsgResumeDone}, texts(r.Messages))
}

func TestAnalyzeResume_ProjectsLengthBoundary(t *testing.T) {
	base := advice.ResumeForm{
		AcademicStatus: advice.StatusThirdYear,
		SoftSkills:     "communication",
		Certifications: "NPTEL",
	}

	tests := []struct {
		name     string
		projects string
		warn     bool
	}{
		{"19 chars", strings.Repeat("a", 19), true},
		{"20 chars", strings.Repeat("a", 20), false},
		{"padded 19 chars", "   " + strings.Repeat("a", 19) + "\n\t", true},
		{"20 runes of cyrillic", strings.Repeat("я", 20), false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			f.Projects = tt.projects
			r, err := advice.AnalyzeResume(f)
			require.NoError(t, err)
			require.Equal(t, tt.warn, contains(texts(r.Messages), advice.MsgMoreProjectDetail))
		})
	}
}

func TestAnalyzeResume_CertificationsWhitespaceOnly(t *testing.T) {
	r, err := advice.AnalyzeResume(advice.ResumeForm{
		AcademicStatus: advice.StatusFinalYear,
		Projects:       strings.Repeat("p", 30),
		SoftSkills:     "communication",
		Certifications: "   \n ",
	})
	require.NoError(t, err)
	require.Equal(t, []string{advice.MsgResumeDone, advice.MsgAddCertifications}, texts(r.Messages))
}

func TestAnalyzeResume_UnknownStatus(t *testing.T) {
	_, err := advice.AnalyzeResume(advice.ResumeForm{AcademicStatus: "PhD"})
	require.ErrorIs(t, err, serr.ErrUnknownStatus)
}

func TestAnalyzeResume_Idempotent(t *testing.T) {
	f := advice.ResumeForm{AcademicStatus: advice.StatusSecondYear, Projects: "x"}
	a, err := advice.AnalyzeResume(f)
	require.NoError(t, err)
	b, err := advice.AnalyzeResume(f)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRecommendInternships_Keywords(t *testing.T) {
	tests := []struct {
		name   string
		skills string
		want   []string
	}{
		{"python and web", "I know python and web dev", []string{"Python Internship", "Web Development Internship"}},
		{"case insensitive", "PYTHON, Web", []string{"Python Internship", "Web Development Internship"}},
		{"all three keep order", "ml web python", []string{"Python Internship", "Web Development Internship", "Machine Learning Internship"}},
		{"substring match", "html", []string{"Machine Learning Internship"}},
		{"nothing", "java", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := advice.RecommendInternships(advice.InternshipForm{
				AcademicStatus: advice.StatusThirdYear,
				Skills:         tt.skills,
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, r.Suggestions)
			require.Equal(t, []string{"Internshala", "LinkedIn", "Indeed"}, r.Platforms)
			require.Equal(t, []string{advice.MsgRecommendationDone}, texts(r.Messages))
		})
	}
}

func TestRecommendInternships_EarlyYearGetsBeginnerInfo(t *testing.T) {
	for _, status := range []string{advice.StatusFirstYear, advice.StatusSecondYear} {
		r, err := advice.RecommendInternships(advice.InternshipForm{AcademicStatus: status})
		require.NoError(t, err)
		require.Equal(t, []models.Message{
			{Level: models.LevelSuccess, Text: advice.MsgRecommendationDone},
			{Level: models.LevelInfo, Text: advice.MsgBeginnerInternship},
		}, r.Messages)
	}
}

func TestRecommendInternships_PlatformsNotShared(t *testing.T) {
	r, err := advice.RecommendInternships(advice.InternshipForm{AcademicStatus: advice.StatusGraduate})
	require.NoError(t, err)
	r.Platforms[0] = "changed"

	again, err := advice.RecommendInternships(advice.InternshipForm{AcademicStatus: advice.StatusGraduate})
	require.NoError(t, err)
	require.Equal(t, "Internshala", again.Platforms[0])
}

func TestRecommendInternships_UnknownStatus(t *testing.T) {
	_, err := advice.RecommendInternships(advice.InternshipForm{AcademicStatus: ""})
	require.ErrorIs(t, err, serr.ErrUnknownStatus)
}

func TestOverview(t *testing.T) {
	require.Equal(t, []string{
		"Resume Improvement",
		"Internship Recommendation",
		"Skill Gap Analysis",
		"Learning Roadmap",
		"For 1st year to Graduates",
	}, advice.Overview())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
