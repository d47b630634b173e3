package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gomate/internal/chat"
	"gomate/internal/summary"
	"gomate/internal/tools"
)

var logsDir string
var model string

var chatCmd = &cobra.Command{
	Use:   "chat [command]",
	Short: "Start the interactive chat loop",
	Long: `Start the interactive chat loop. With a command argument, run a
single turn and exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("OPENAI_API_KEY not set")
		}

		var command string
		if len(args) > 0 {
			command = args[0]
		}

		session, err := tools.NewSession(
			tools.WithOutput(cmd.OutOrStdout()),
			tools.WithConfirmer(tools.NewStdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())),
		)
		if err != nil {
			return err
		}

		backend := summary.NewCached(
			summary.NewOpenAIBackend(apiKey, ""),
			256,
			filepath.Join(logsDir, "summary_cache.json"),
		)

		c, err := chat.New(chat.Config{
			LogsDir: logsDir,
			Command: command,
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
		}, chat.NewOpenAIProvider(apiKey, model), session, summary.New(backend))
		if err != nil {
			return err
		}
		return c.Run(cmd.Context())
	},
}

func init() {
	// Logs dir flag with env var fallback
	defaultLogs := "logs"
	if envLogs := os.Getenv("GOMATE_LOGS"); envLogs != "" {
		defaultLogs = envLogs
	}
	chatCmd.Flags().StringVar(&logsDir, "logs", defaultLogs, "Folder where conversation logs are stored")
	chatCmd.Flags().StringVar(&model, "model", "", "Chat model to use")

	rootCmd.AddCommand(chatCmd)
}
