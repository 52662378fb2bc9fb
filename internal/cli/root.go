// Package cli provides the outfitctl command-line interface.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the outfitctl command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "outfitctl",
		Short: "Inspect and maintain the outfit advisor",
		Long: `outfitctl runs the outfit scheme extraction offline, resolves color
names the way the service does, and applies database migrations.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log extraction details to stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		if !verbose {
			return slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	root.AddCommand(newParseCmd(logger))
	root.AddCommand(newColorCmd())
	root.AddCommand(newMigrateCmd(logger))
	return root
}
