package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jig/internal/core/domain"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the commands of the companion project",
		Args:  cobra.NoArgs,
		RunE: c.configured(func(cmd *cobra.Command, cfg domain.Config, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.List(cmd.Context(), cfg, asJSON)
		}),
	}
	cmd.Flags().Bool("json", false, "Print the listing as JSON")
	return cmd
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a command of the companion project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				return cmd.Help()
			}
			return c.configured(func(cmd *cobra.Command, cfg domain.Config, args []string) error {
				return c.app.Run(cmd.Context(), cfg, args[0], args[1:])
			})(cmd, args)
		},
	}
	// Everything after the command name belongs to the command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
