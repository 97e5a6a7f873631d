package command

import (
	"io"

	"github.com/telnet2/go-practice/go-cmdkit/internal/configview"
)

// Parameter describes one named input a command declares.
type Parameter struct {
	// Name is the configuration key the parameter is resolved under.
	Name string
	// Help is a one-line description shown in help output.
	Help string
	// Required marks the parameter as mandatory. A required parameter is
	// never satisfied by its Default; it must resolve from configuration.
	Required bool
	// Default is the fallback value for optional parameters.
	Default string
}

// Definition is the static metadata of a command. It is treated as
// immutable once constructed.
type Definition struct {
	// Name identifies the command. Names are unique per registry and
	// matched case-insensitively.
	Name string
	// Help is the command's description shown in help output.
	Help string
	// Parameters lists the command's inputs in declaration order.
	Parameters []Parameter
}

// RunContext is the execution-time bundle handed to a command. It is
// created fresh for every run and owns no state beyond that run.
type RunContext struct {
	// Config is the effective configuration view: command-scoped values,
	// then global values, then declared defaults.
	Config configview.View
	// Info receives the command's regular output.
	Info io.Writer
	// Error receives the command's error output.
	Error io.Writer
}

// Command is a runnable unit known to the dispatch layer.
type Command interface {
	// Definition returns the command's static metadata.
	Definition() Definition
	// Run executes the command. Returned errors are captured by the
	// Runner and converted into a failed RunResult; they never reach the
	// Runner's caller.
	Run(ctx *RunContext) error
}

type funcCommand struct {
	def Definition
	fn  func(ctx *RunContext) error
}

// Func wraps a definition and a function into a Command.
func Func(def Definition, fn func(ctx *RunContext) error) Command {
	return &funcCommand{def: def, fn: fn}
}

func (c *funcCommand) Definition() Definition {
	return c.def
}

func (c *funcCommand) Run(ctx *RunContext) error {
	return c.fn(ctx)
}
