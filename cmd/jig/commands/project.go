package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jig/internal/app"
	"go.trai.ch/jig/internal/core/domain"
)

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a companion project",
		Args:  cobra.NoArgs,
		RunE: c.configured(func(cmd *cobra.Command, cfg domain.Config, _ []string) error {
			return c.app.Init(cmd.Context(), cfg)
		}),
	}
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the companion executable",
		Args:  cobra.NoArgs,
		RunE: c.configured(func(cmd *cobra.Command, cfg domain.Config, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Build(cmd.Context(), cfg, app.BuildOptions{
				Force: force,
				Watch: watch,
			})
		}),
	}

	cmd.Flags().BoolP("force", "f", false, "Rebuild even when the executable is up to date")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the companion sources change")

	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build products of the companion project",
		Args:  cobra.NoArgs,
		RunE: c.configured(func(cmd *cobra.Command, cfg domain.Config, _ []string) error {
			return c.app.Clean(cmd.Context(), cfg)
		}),
	}
}

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: c.configured(func(_ *cobra.Command, cfg domain.Config, _ []string) error {
			return c.app.Config(cfg)
		}),
	}
}
