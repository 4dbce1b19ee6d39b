// Методы клиента для проверок дашборда.
package api

import "github.com/IvanChernomyrdin/careermind/internal/shared/models"

// Resume отправляет форму резюме на POST /api/advice/resume.
func (c *Client) Resume(accessToken string, req models.ResumeRequest) (models.AdviceResponse, error) {
	var resp models.AdviceResponse
	err := c.PostJSON("/api/advice/resume", req, &resp, accessToken)
	return resp, err
}

// Internships отправляет навыки на POST /api/advice/internships.
func (c *Client) Internships(accessToken string, req models.InternshipRequest) (models.AdviceResponse, error) {
	var resp models.AdviceResponse
	err := c.PostJSON("/api/advice/internships", req, &resp, accessToken)
	return resp, err
}
