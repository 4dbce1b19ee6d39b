package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/careermind/internal/server/api"
	"github.com/IvanChernomyrdin/careermind/internal/server/models"
	shared "github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

// serveProtected прогоняет запрос через проверку токена и хендлер
func serveProtected(t *testing.T, h *api.Handler, fn http.HandlerFunc, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(b))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Verifier.AuthMiddleware()(fn).ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, h *api.Handler) string {
	t.Helper()

	tok, err := h.Svc.Auth.IssueToken(models.User{Email: "a@x.com", Name: "Ann"})
	require.NoError(t, err)
	return tok
}

func TestHandler_Internships_OK(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := serveProtected(t, h, h.Internships, tokenFor(t, h), shared.InternshipRequest{
		AcademicStatus: "2nd Year",
		Skills:         "I know python and web dev",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp shared.AdviceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, []string{"Python Internship", "Web Development Internship"}, resp.Suggestions)
	require.Equal(t, []string{"Internshala", "LinkedIn", "Indeed"}, resp.Platforms)
	require.Equal(t, []shared.Message{
		{Level: shared.LevelSuccess, Text: "Recommendations generated"},
		{Level: shared.LevelInfo, Text: "Recommended beginner & learning internships"},
	}, resp.Messages)
}

func TestHandler_Resume_OK(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := serveProtected(t, h, h.Resume, tokenFor(t, h), shared.ResumeRequest{
		AcademicStatus: "Final Year",
		SoftSkills:     "teamwork",
		Projects:       "Library management system in Django",
		Certifications: "NPTEL DSA",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp shared.AdviceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, []shared.Message{
		{Level: shared.LevelSuccess, Text: "Resume analysis completed"},
		{Level: shared.LevelWarning, Text: "Improve communication skills"},
	}, resp.Messages)
}

func TestHandler_Advice_UnknownStatus(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := serveProtected(t, h, h.Resume, tokenFor(t, h), shared.ResumeRequest{AcademicStatus: "Alumni"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_Advice_RequiresToken(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	rec := serveProtected(t, h, h.Internships, "", shared.InternshipRequest{AcademicStatus: "Graduate"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, h))
	rec := httptest.NewRecorder()
	h.Verifier.AuthMiddleware()(http.HandlerFunc(h.Me)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp shared.MeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, shared.MeResponse{Email: "a@x.com", Name: "Ann"}, resp)
}
