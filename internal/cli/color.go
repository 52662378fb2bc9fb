package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/outfit-advisor/internal/scheme"
)

func newColorCmd() *cobra.Command {
	var nearest bool
	cmd := &cobra.Command{
		Use:   "color <token>...",
		Short: "Resolve color names to hex values",
		Long: `Print the #RRGGBB value the service assigns to each color token.
Unknown tokens resolve to ` + scheme.DefaultColor + `. With --nearest, a third
column names the closest known color.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range args {
				hex := scheme.ResolveColor(token)
				line := token + "\t" + hex
				if nearest {
					if name, ok := scheme.NearestName(hex); ok {
						line += "\t" + name
					}
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&nearest, "nearest", false, "also print the closest named color")
	return cmd
}
