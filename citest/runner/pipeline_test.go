package runner_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/telnet2/go-practice/go-cmdkit/internal/command"
	"github.com/telnet2/go-practice/go-cmdkit/internal/configview"
)

// deployCommand echoes the environment it would deploy to, so specs can
// observe which configuration layer won.
func deployCommand() command.Command {
	def := command.Definition{
		Name: "deploy",
		Help: "Deploys the current build to an environment.",
		Parameters: []command.Parameter{
			{Name: "env", Help: "Target environment name", Required: true},
			{Name: "timeout", Help: "Deployment timeout", Default: "30s"},
		},
	}
	return command.Func(def, func(ctx *command.RunContext) error {
		env, _ := ctx.Config.Get("env")
		timeout, _ := ctx.Config.Get("timeout")
		fmt.Fprintf(ctx.Info, "deploying to %s (timeout %s)\n", env, timeout)
		return nil
	})
}

var _ = Describe("Command pipeline", func() {
	var (
		registry *command.Registry
		runner   *command.Runner
	)

	newRunner := func(global configview.View) *command.Runner {
		return command.NewRunner(registry, global)
	}

	BeforeEach(func() {
		registry = command.NewRegistry()
		Expect(registry.Register(command.NewHelpCommand(registry))).To(Succeed())
		Expect(registry.Register(deployCommand())).To(Succeed())
	})

	Describe("resolution", func() {
		BeforeEach(func() {
			runner = newRunner(configview.Map(map[string]string{"env": "prod"}))
		})

		It("resolves names case-insensitively", func() {
			for _, name := range []string{"deploy", "DEPLOY", "DePloY"} {
				result := runner.Run(name)
				Expect(result.Succeed).To(BeTrue(), "Run(%q)", name)
				Expect(result.InfoLog).To(ContainSubstring("deploying to prod"))
			}
		})

		It("fails immediately for unknown names", func() {
			result := runner.Run("deplo")
			Expect(result.Succeed).To(BeFalse())
			Expect(result.ErrorLog).To(ContainSubstring(`"deplo"`))
			Expect(result.ErrorLog).To(ContainSubstring("help"))
			Expect(result.ErrorLog).To(ContainSubstring("deploy"))
			Expect(result.ErrorLog).To(ContainSubstring(`Did you mean "deploy"?`))
		})
	})

	Describe("parameter binding", func() {
		It("reports missing required parameters with help", func() {
			runner = newRunner(configview.Map(nil))

			result := runner.Run("deploy")
			Expect(result.Succeed).To(BeFalse())
			Expect(result.ErrorLog).To(Equal("Missing required parameters <env>"))
			Expect(result.InfoLog).To(ContainSubstring(`Command "deploy"`))
			Expect(result.InfoLog).To(ContainSubstring("Command Parameters:"))
		})

		It("prefers command-scoped values over global ones over defaults", func() {
			runner = newRunner(configview.Map(map[string]string{
				"env":                     "prod",
				"timeout":                 "5m",
				"Commands:deploy:timeout": "90s",
			}))

			result := runner.Run("deploy")
			Expect(result.Succeed).To(BeTrue())
			Expect(result.InfoLog).To(ContainSubstring("deploying to prod (timeout 90s)"))
		})

		It("falls back to declared defaults", func() {
			runner = newRunner(configview.Map(map[string]string{"env": "prod"}))

			result := runner.Run("deploy")
			Expect(result.Succeed).To(BeTrue())
			Expect(result.InfoLog).To(ContainSubstring("timeout 30s"))
		})
	})

	Describe("configuration sources", func() {
		It("binds parameters from a configuration file and the environment", func() {
			dir := GinkgoT().TempDir()
			path := filepath.Join(dir, "cmdkit.yaml")
			Expect(os.WriteFile(path, []byte(
				"Commands:\n  deploy:\n    timeout: 2m\n"), 0644)).To(Succeed())

			file, err := configview.NewFile(path)
			Expect(err).NotTo(HaveOccurred())

			GinkgoT().Setenv("CMDKIT_ENV", "staging")

			runner = newRunner(configview.Layered(configview.Env("CMDKIT_"), file))

			result := runner.Run("deploy")
			Expect(result.Succeed).To(BeTrue())
			Expect(result.InfoLog).To(ContainSubstring("deploying to staging (timeout 2m)"))
		})
	})

	Describe("failure capture", func() {
		It("converts command errors into failed results", func() {
			failing := command.Func(command.Definition{Name: "flaky", Help: "Fails."},
				func(ctx *command.RunContext) error {
					fmt.Fprintln(ctx.Error, "upstream unreachable")
					return errors.New("gave up after 3 attempts")
				})
			Expect(registry.Register(failing)).To(Succeed())
			runner = newRunner(configview.Map(nil))

			result := runner.Run("flaky")
			Expect(result.Succeed).To(BeFalse())
			Expect(result.ErrorLog).To(ContainSubstring("upstream unreachable"))
			Expect(result.InfoLog).To(ContainSubstring("Command execution failed with error:"))
			Expect(result.InfoLog).To(ContainSubstring("gave up after 3 attempts"))
		})
	})

	Describe("help command", func() {
		It("succeeds with only itself registered", func() {
			solo := command.NewRegistry()
			Expect(solo.Register(command.NewHelpCommand(solo))).To(Succeed())
			runner := command.NewRunner(solo, configview.Map(nil))

			result := runner.Run("help")
			Expect(result.Succeed).To(BeTrue())
			Expect(result.InfoLog).To(ContainSubstring("Available commands:"))
			Expect(result.InfoLog).To(ContainSubstring(`Command "help"`))
		})

		It("lists every registered command", func() {
			runner = newRunner(configview.Map(nil))

			result := runner.Run("help")
			Expect(result.Succeed).To(BeTrue())
			Expect(result.InfoLog).To(ContainSubstring(`Command "help"`))
			Expect(result.InfoLog).To(ContainSubstring(`Command "deploy"`))
		})
	})
})
