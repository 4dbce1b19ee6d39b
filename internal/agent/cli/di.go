package cli

import (
	"github.com/IvanChernomyrdin/careermind/internal/agent/api"
	"github.com/spf13/cobra"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command, prompt string, fromStdin bool) (string, error) {
		return readPassword(cmd, prompt, fromStdin)
	}
)
