package commands

import (
	"fmt"
	"strconv"

	"github.com/telnet2/go-practice/go-cmdkit/internal/command"
)

// builtinCommands returns the commands the cmdkit binary ships with. The
// help command holds the repository so its listing stays current.
func builtinCommands(repo command.Repository) []command.Command {
	return []command.Command{
		command.NewHelpCommand(repo),
		newEchoCommand(),
		newVersionCommand(),
	}
}

func newEchoCommand() command.Command {
	def := command.Definition{
		Name: "echo",
		Help: "Writes a message to the output, optionally repeated.",
		Parameters: []command.Parameter{
			{Name: "message", Help: "Text to write", Required: true},
			{Name: "repeat", Help: "Number of times to write it", Default: "1"},
			{Name: "prefix", Help: "Text prepended to every line", Default: ""},
		},
	}
	return command.Func(def, func(ctx *command.RunContext) error {
		message, _ := ctx.Config.Get("message")
		prefix, _ := ctx.Config.Get("prefix")
		repeatRaw, _ := ctx.Config.Get("repeat")

		repeat, err := strconv.Atoi(repeatRaw)
		if err != nil {
			return fmt.Errorf("repeat must be a number, got %q", repeatRaw)
		}
		if repeat < 1 {
			return fmt.Errorf("repeat must be positive, got %d", repeat)
		}

		for i := 0; i < repeat; i++ {
			fmt.Fprintln(ctx.Info, prefix+message)
		}
		return nil
	})
}

func newVersionCommand() command.Command {
	def := command.Definition{
		Name: "version",
		Help: "Prints the cmdkit version.",
	}
	return command.Func(def, func(ctx *command.RunContext) error {
		fmt.Fprintf(ctx.Info, "cmdkit %s (%s)\n", Version, BuildTime)
		return nil
	})
}
