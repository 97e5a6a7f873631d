// Package command implements the command resolution and parameter-binding
// pipeline.
//
// A Command pairs static metadata (Definition) with an execution entry
// point. The Runner is the orchestrator: it resolves a textual command
// name case-insensitively, builds the configuration view the command will
// see, validates required parameters, executes the command, and packages
// everything into a RunResult instead of letting output or errors escape
// to the process boundary.
//
// # Configuration layering
//
// For a command named "deploy", parameter values resolve through three
// layers, highest precedence first:
//
//  1. Command-scoped configuration: Commands:deploy:<parameter>
//  2. Global configuration: <parameter>
//  3. The parameter's declared default
//
// Required parameters must resolve from the first two layers; a declared
// default never satisfies a required parameter.
//
// # Failure modes
//
// Runner.Run never returns an error. Three failure kinds all surface as
// RunResult with Succeed=false:
//
//   - Not found: ErrorLog names the command and lists what is registered.
//   - Validation: ErrorLog lists every missing required parameter in
//     angle brackets; InfoLog carries the command's full help block.
//   - Execution: the command's error (or recovered panic) is appended to
//     InfoLog under a diagnostic header; ErrorLog carries whatever the
//     command wrote to its error sink.
//
// # Example
//
//	registry := command.NewRegistry()
//	registry.Register(command.NewHelpCommand(registry))
//	registry.Register(deployCommand)
//
//	global := configview.Layered(
//		configview.Map(flagOverrides),
//		configview.Env("CMDKIT_"),
//		fileView,
//	)
//
//	runner := command.NewRunner(registry, global)
//	result := runner.Run("deploy")
//	if !result.Succeed {
//		fmt.Fprint(os.Stderr, result.ErrorLog)
//	}
//	fmt.Fprint(os.Stdout, result.InfoLog)
package command
