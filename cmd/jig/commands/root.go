// Package commands implements the CLI commands of the jig front door.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/jig/internal/adapters/config"
	"go.trai.ch/jig/internal/app"
	"go.trai.ch/jig/internal/build"
	"go.trai.ch/jig/internal/core/domain"
)

// CLI represents the command line interface for jig.
type CLI struct {
	app     Application
	load    ConfigSource
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Init(ctx context.Context, cfg domain.Config) error
	Build(ctx context.Context, cfg domain.Config, opts app.BuildOptions) error
	Clean(ctx context.Context, cfg domain.Config) error
	List(ctx context.Context, cfg domain.Config, asJSON bool) error
	Run(ctx context.Context, cfg domain.Config, command string, args []string) error
	Config(cfg domain.Config) error
}

// ConfigSource resolves the configuration of one invocation from its flags.
type ConfigSource func(flags *pflag.FlagSet) (domain.Config, error)

// New creates a new CLI instance with the given app.
func New(a Application, load ConfigSource) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jig",
		Short:         "Run the project commands declared in the companion project",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	config.RegisterFlags(rootCmd.PersistentFlags())

	c := &CLI{
		app:     a,
		load:    load,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newInitCmd(),
		c.newBuildCmd(),
		c.newCleanCmd(),
		c.newListCmd(),
		c.newRunCmd(),
		c.newConfigCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configured wraps a use case so that it receives the resolved configuration.
func (c *CLI) configured(fn func(cmd *cobra.Command, cfg domain.Config, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := c.load(cmd.Flags())
		if err != nil {
			return err
		}
		return fn(cmd, cfg, args)
	}
}
