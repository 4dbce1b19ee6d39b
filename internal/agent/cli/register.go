package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Пароль берётся из --password, из stdin (--password-stdin) или спрашивается
// с терминала дважды. Если --confirm не задан, подтверждением считается сам пароль.
//
// Пример использования:
//
//	careermind register --name Ann --email a@x.com --password p1
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password, confirm string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  careermind register --name Ann --email a@x.com --password p1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = ReadPassword(cmd, "Password: ", fromStdin)
				if err != nil {
					return err
				}
				if confirm == "" && !fromStdin {
					confirm, err = ReadPassword(cmd, "Confirm password: ", false)
					if err != nil {
						return err
					}
				}
			}
			if confirm == "" {
				confirm = password
			}

			c := NewAPIClient(app.ServerURL, app.Insecure)
			resp, err := c.Register(name, email, password, confirm)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
