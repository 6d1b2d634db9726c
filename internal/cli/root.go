// Package cli implements the fieldops CLI commands.
package cli

import (
	"context"

	"github.com/SscSPs/field_ops_app/internal/platform/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg     *config.Config
	seed    bool
	noColor bool
}

// NewRootCmd builds the command tree for one invocation.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "fieldops",
		Short: "Review and approve daily field logs",
		Long: `fieldops keeps a session of time cards, equipment logs and material
deliveries in memory. Submitters add logs; a reviewer filters, edits and
approves them from the dashboard.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.seed, "seed", cfg.SeedDemoData, "Start the session with the demo records")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", !cfg.DashboardColor, "Disable colored output")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(newDashboardCmd(opts))
	rootCmd.AddCommand(newSessionCmd(opts))
	return rootCmd
}

// Execute runs the CLI.
func Execute(ctx context.Context, cfg *config.Config) error {
	return NewRootCmd(cfg).ExecuteContext(ctx)
}
