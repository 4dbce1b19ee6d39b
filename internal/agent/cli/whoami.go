package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd создаёт команду, которая показывает, под кем выполнен вход.
//
// Токен проверяется сервером (GET /api/me), так что просроченный токен
// даёт ошибку, а не устаревшее имя из файла.
//
// Пример использования:
//
//	careermind whoami
func NewWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Показать текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := accessToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			me, err := c.Me(token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", me.Name, me.Email)
			return nil
		},
	}
}
