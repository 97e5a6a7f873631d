package command

import (
	"fmt"
	"io"
)

// usageBanner is the fixed text the built-in help command prints before
// the per-command help blocks.
const usageBanner = `Runs a named command with configuration-driven parameters.

Usage: run <command>

Parameter values are resolved from configuration: command-scoped keys
(Commands:<command>:<parameter>) override global keys, and declared
defaults fill whatever is left unset.

Available commands:
`

// PrintHelp renders one command definition to w in a fixed layout:
// name header, help text, a blank line, the parameter list with
// required/optional and default annotations, then two blank lines.
// Rendering is deterministic; the same definition always produces the
// same text.
func PrintHelp(w io.Writer, def Definition) {
	fmt.Fprintf(w, "Command %q\n", def.Name)
	fmt.Fprintln(w, def.Help)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Command Parameters:")
	for _, p := range def.Parameters {
		marker := "Optional"
		if p.Required {
			marker = "Required"
		}
		defaultValue := p.Default
		if defaultValue == "" {
			defaultValue = "<empty>"
		}
		fmt.Fprintf(w, "  %s: %s [%s] Default: %s\n", p.Name, p.Help, marker, defaultValue)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)
}

type helpCommand struct {
	repo Repository
}

// NewHelpCommand returns the built-in "help" command. It holds the
// repository rather than a command snapshot so invocation reflects the
// registrations current at run time.
func NewHelpCommand(repo Repository) Command {
	return &helpCommand{repo: repo}
}

func (h *helpCommand) Definition() Definition {
	return Definition{
		Name: "help",
		Help: "Lists every registered command and its parameters.",
	}
}

func (h *helpCommand) Run(ctx *RunContext) error {
	fmt.Fprint(ctx.Info, usageBanner, "\n")
	for _, cmd := range h.repo.Commands() {
		PrintHelp(ctx.Info, cmd.Definition())
	}
	return nil
}
