package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gomate/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gomate",
	Short: "Terminal chat assistant that can run the code it writes",
	Long: `gomate is an interactive chat assistant whose replies can carry
executable actions: fenced code blocks and inline commands for the shell,
an embedded JavaScript interpreter, and file load/save. Every
side-effecting action is confirmed before it runs, and its output is fed
back into the conversation.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gomate %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
