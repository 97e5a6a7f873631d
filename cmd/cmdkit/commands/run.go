package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/telnet2/go-practice/go-cmdkit/internal/command"
	"github.com/telnet2/go-practice/go-cmdkit/internal/configview"
)

var (
	runConfigFile string
	runSetValues  []string
	runEnvPrefix  string
	runNoEnv      bool
)

var runCmd = &cobra.Command{
	Use:   "run <command>",
	Short: "Run a registered command by name",
	Long: `Run a registered command by name.

Parameter values are resolved from, in order of precedence: --set
overrides, environment variables (prefixed, ':' and '.' as '_'), and an
optional configuration file.

Examples:
  cmdkit run help
  cmdkit run echo --set message="hello world"
  cmdkit run echo --config cmdkit.yaml
  CMDKIT_COMMANDS_ECHO_MESSAGE=hi cmdkit run echo`,
	Args: cobra.ExactArgs(1),
	RunE: runCommand,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Configuration file (json, jsonc, yaml)")
	runCmd.Flags().StringArrayVarP(&runSetValues, "set", "s", nil, "Set a configuration value (key=value, repeatable)")
	runCmd.Flags().StringVar(&runEnvPrefix, "env-prefix", "CMDKIT_", "Environment variable prefix")
	runCmd.Flags().BoolVar(&runNoEnv, "no-env", false, "Ignore environment variables")
}

func runCommand(cmd *cobra.Command, args []string) error {
	setupLogging()

	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	global, err := buildGlobalView(runSetValues, runConfigFile, runEnvPrefix, runNoEnv)
	if err != nil {
		return err
	}

	registry := command.NewRegistry()
	for _, c := range builtinCommands(registry) {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	runner := command.NewRunner(registry, global)
	result := runner.Run(args[0])

	fmt.Fprint(os.Stdout, result.InfoLog)
	if result.ErrorLog != "" {
		color.New(color.FgRed).Fprintln(os.Stderr, result.ErrorLog)
	}

	if !result.Succeed {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(1)
	}
	return nil
}

// buildGlobalView assembles the global configuration view from --set
// pairs, the environment, and an optional file, highest precedence first.
func buildGlobalView(setValues []string, configFile, envPrefix string, noEnv bool) (configview.View, error) {
	var layers []configview.View

	overrides, err := parseSetValues(setValues)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		layers = append(layers, configview.Map(overrides))
	}

	if !noEnv {
		layers = append(layers, configview.Env(envPrefix))
	}

	if configFile != "" {
		file, err := configview.NewFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		layers = append(layers, file)
	}

	return configview.Layered(layers...), nil
}

// parseSetValues parses repeated key=value flags.
func parseSetValues(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set value %q, expected key=value", pair)
		}
		values[key] = value
	}
	return values, nil
}
