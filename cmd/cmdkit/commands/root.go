// Package commands provides the CLI commands for cmdkit.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telnet2/go-practice/go-cmdkit/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	printLogs bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "cmdkit",
	Short: "cmdkit - configuration-driven command runner",
	Long: `cmdkit resolves a command by name, binds its parameters from layered
configuration (command-scoped keys over global keys over declared
defaults), and runs it with captured output.

Run 'cmdkit run <command>' to execute a command, or 'cmdkit run help'
to list what is registered.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand, show help
		cmd.Help()
	},
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVar(&printLogs, "print-logs", false, "Print logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("cmdkit %s (%s)\n", Version, BuildTime))

	// Add subcommands
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupLogging configures the global logger from the persistent flags.
// Logs stay off unless asked for so that command results are the only
// output.
func setupLogging() {
	if !printLogs {
		logging.Disable()
		return
	}
	logging.Init(logging.Config{Level: logLevel, Pretty: true})
}
