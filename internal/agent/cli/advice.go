package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/careermind/internal/shared/models"
)

var errNotLoggedIn = errors.New("not logged in: run `careermind login` first")

// NewResumeCmd создаёт команду проверки резюме.
//
// Пример использования:
//
//	careermind resume --status "2nd Year" --department CSE --projects "Todo app"
func NewResumeCmd(app *App) *cobra.Command {
	var req models.ResumeRequest

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Проверка резюме",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Resume(token, req)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.AcademicStatus, "status", "", `academic status: "1st Year", "2nd Year", "3rd Year", "Final Year", "Graduate"`)
	cmd.Flags().StringVar(&req.Department, "department", "CSE", "CSE|ECE|EEE|MECH|CIVIL|IT|OTHER")
	cmd.Flags().StringVar(&req.TechnicalSkills, "technical-skills", "", "technical skills")
	cmd.Flags().StringVar(&req.SoftSkills, "soft-skills", "", "soft skills")
	cmd.Flags().StringVar(&req.Projects, "projects", "", "projects / internships")
	cmd.Flags().StringVar(&req.Certifications, "certifications", "", "certifications")
	cmd.Flags().StringVar(&req.Experience, "experience", "", "work experience (if any)")
	cmd.MarkFlagRequired("status")

	return cmd
}

// NewInternshipsCmd создаёт команду подбора стажировок.
//
// Пример использования:
//
//	careermind internships --status "Final Year" --skills "python, web"
func NewInternshipsCmd(app *App) *cobra.Command {
	var req models.InternshipRequest

	cmd := &cobra.Command{
		Use:   "internships",
		Short: "Подбор стажировок по навыкам",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Internships(token, req)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.AcademicStatus, "status", "", `academic status: "1st Year", "2nd Year", "3rd Year", "Final Year", "Graduate"`)
	cmd.Flags().StringVar(&req.Skills, "skills", "", "your skills")
	cmd.MarkFlagRequired("status")

	return cmd
}

func accessToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", errNotLoggedIn
	}
	return app.Creds.AccessToken, nil
}

// printReport печатает отчёт: сообщения с уровнем, стажировки, площадки.
func printReport(w io.Writer, r models.AdviceResponse) {
	for _, m := range r.Messages {
		fmt.Fprintf(w, "[%s] %s\n", m.Level, m.Text)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "- %s\n", s)
	}
	if len(r.Platforms) > 0 {
		fmt.Fprintf(w, "Apply on: %s\n", strings.Join(r.Platforms, ", "))
	}
}
