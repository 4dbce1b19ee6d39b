// Package cli реализует командный интерфейс (CLI) клиента CareerMind.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (access токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/careermind/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера CareerMind (например, "http://127.0.0.1:8080").
	ServerURL string
	// Insecure — не проверять TLS сертификат сервера (только для dev).
	Insecure bool

	// CredsPath — путь к файлу с сохранёнными учётными данными.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "careermind",
		Short: "CareerMind CLI — советы по резюме и подбор стажировок",
		Long: `CareerMind CLI.

Команды:
  register     Регистрация нового пользователя
  login        Логин (получить access токен)
  resume       Проверка резюме
  internships  Подбор стажировок по навыкам
  whoami       Текущий пользователь
  version      Версия и дата сборки

Примеры:

Регистрация:
  careermind register --name Ann --email a@x.com

Логин:
  careermind login --email a@x.com
  (пароль спрашивается без эха, токен сохраняется в ~/.careermind/credentials.json)

Проверка резюме:
  careermind resume --status "2nd Year" --projects "Todo app" --soft-skills "teamwork"

Стажировки:
  careermind internships --status "Final Year" --skills "python, web"
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewResumeCmd(app))
	cmd.AddCommand(NewInternshipsCmd(app))
	cmd.AddCommand(NewWhoamiCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
