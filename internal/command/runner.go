package command

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/telnet2/go-practice/go-cmdkit/internal/configview"
	"github.com/telnet2/go-practice/go-cmdkit/internal/logging"
)

// scopePrefix is the configuration namespace for command-specific
// overrides: Commands:<name>:<parameter>.
const scopePrefix = "Commands:"

// executionFailedHeader introduces the failure diagnostic appended to a
// run's info output when the command's own logic errors out.
const executionFailedHeader = "Command execution failed with error:"

// maxSuggestionDistance bounds how far a mistyped name may be from a
// registered one before "did you mean" stays quiet.
const maxSuggestionDistance = 2

// Runner resolves command names, binds parameters from layered
// configuration, and executes commands with captured output.
//
// The name index is built once at construction and never mutated; a
// Runner holds no other state across runs, so concurrent Run calls are
// safe as long as the commands and the configuration source tolerate
// concurrent reads.
type Runner struct {
	index  map[string]Command
	names  []string
	global configview.View
	log    zerolog.Logger
}

// NewRunner builds a runner over the repository's current command set and
// the given global configuration view. Commands registered with the
// repository afterwards are not visible; build a new Runner to pick them
// up.
func NewRunner(repo Repository, global configview.View) *Runner {
	commands := repo.Commands()
	index := make(map[string]Command, len(commands))
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		name := cmd.Definition().Name
		key := strings.ToLower(name)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = cmd
		names = append(names, name)
	}

	return &Runner{
		index:  index,
		names:  names,
		global: global,
		log:    logging.For("runner"),
	}
}

// Run resolves name case-insensitively, validates required parameters
// against the layered configuration, executes the command, and packages
// the outcome. It never returns an error or panics; every failure mode
// is expressed through the result.
func (r *Runner) Run(name string) RunResult {
	log := r.log.With().
		Str("run_id", ulid.Make().String()).
		Str("command", name).
		Logger()

	cmd, ok := r.index[strings.ToLower(name)]
	if !ok {
		log.Warn().Strs("available", r.names).Msg("command not found")
		return Fail(r.notFoundMessage(name), "")
	}
	def := cmd.Definition()

	// Command-scoped keys shadow global keys for the same parameter.
	scoped := configview.Prefixed(r.global, scopePrefix+def.Name+":")
	taskView := configview.Layered(scoped, r.global)

	// Required parameters must resolve from configuration alone;
	// declared defaults never satisfy them.
	var missing []string
	for _, p := range def.Parameters {
		if !p.Required {
			continue
		}
		if _, ok := taskView.Get(p.Name); !ok {
			missing = append(missing, "<"+p.Name+">")
		}
	}
	if len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("required parameters unresolved")
		var help bytes.Buffer
		PrintHelp(&help, def)
		return Fail("Missing required parameters "+strings.Join(missing, ", "), help.String())
	}

	effective := configview.Layered(taskView, DefaultsView(def))

	var info, errSink bytes.Buffer
	ctx := &RunContext{Config: effective, Info: &info, Error: &errSink}

	if err := execute(cmd, ctx); err != nil {
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintln(&info, executionFailedHeader)
		fmt.Fprintln(&info, err.Error())
		return Fail(errSink.String(), info.String())
	}

	log.Debug().Msg("command completed")
	return Ok(info.String())
}

// execute runs the command, converting a panic into an ordinary error so
// no failure mode escapes the Runner.
func execute(cmd Command, ctx *RunContext) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return cmd.Run(ctx)
}

// notFoundMessage names the unknown command, lists everything that is
// registered, and suggests a close match when one exists.
func (r *Runner) notFoundMessage(name string) string {
	msg := fmt.Sprintf("Command %q not found. Available commands: %s",
		name, strings.Join(r.names, ", "))
	if suggestion := r.closestName(name); suggestion != "" {
		msg += fmt.Sprintf(". Did you mean %q?", suggestion)
	}
	return msg
}

func (r *Runner) closestName(name string) string {
	lowered := strings.ToLower(name)
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range r.names {
		dist := levenshtein.ComputeDistance(lowered, strings.ToLower(candidate))
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
