package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/careermind/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// Команда получает access токен и сохраняет его вместе с email и именем
// в локальный конфигурационный файл.
//
// Пример использования:
//
//	careermind login --email a@x.com --password p1
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить access токен)",
		Long: `Логин пользователя.

Пример:
  careermind login --email a@x.com --password p1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = ReadPassword(cmd, "Password: ", fromStdin)
				if err != nil {
					return err
				}
			}

			// создаём API-клиент для общения с сервером
			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Login(email, password)
			if err != nil {
				return err
			}

			if app.Creds == nil {
				app.Creds = &config.Credentials{}
			}
			app.Creds.AccessToken = resp.AccessToken
			app.Creds.Email = email
			app.Creds.Name = resp.Name

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Login successful. Welcome, %s\n", resp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}
