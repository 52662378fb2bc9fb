package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/outfit-advisor/constants"
	"github.com/joseph-ayodele/outfit-advisor/internal/entity"
	"github.com/joseph-ayodele/outfit-advisor/internal/scheme"
)

type parseResult struct {
	Schemes     []entity.OutfitScheme `json:"schemes"`
	Reasoning   string                `json:"reasoning,omitempty"`
	ColorScheme string                `json:"colorScheme,omitempty"`
}

func newParseCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		garments []string
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Extract outfit schemes from a completion",
		Long: `Read a model completion from file (or stdin when no file or "-" is given)
and print the outfit schemes the service would return, as JSON.

Examples:
  # Parse a saved completion
  outfitctl parse completion.txt

  # Parse with the garments the user supplied
  outfitctl parse --garment "T恤:top:白色" --garment "牛仔裤:bottom:蓝色" completion.txt

  # Skip deduplication and top-up
  cat completion.txt | outfitctl parse --raw`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			clothes, err := ParseGarments(garments)
			if err != nil {
				return err
			}

			log := logger(cmd)
			schemes := scheme.NewExtractor(log).Extract(text, clothes)
			if !raw {
				schemes = scheme.TopUp(scheme.Dedupe(schemes, log), scheme.GarmentsBySlot(clothes), scheme.MinSchemes)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(parseResult{
				Schemes:     schemes,
				Reasoning:   scheme.Reasoning(text),
				ColorScheme: scheme.ColorAnalysis(text),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&garments, "garment", "g", nil, "user garment as name:type[:color] (repeatable)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print extracted schemes without deduplication or top-up")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read completion: %w", err)
	}
	return string(data), nil
}

// ParseGarments reads garments written as name:type[:color].
func ParseGarments(values []string) ([]entity.UserGarment, error) {
	out := make([]entity.UserGarment, 0, len(values))
	for _, v := range values {
		parts := strings.SplitN(v, ":", 3)
		if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid garment %q: want name:type[:color]", v)
		}
		typ := strings.TrimSpace(parts[1])
		if _, ok := constants.CanonicalizeSlot(typ); !ok {
			return nil, fmt.Errorf("invalid garment %q: unknown type %q (valid: %s)",
				v, typ, strings.Join(constants.AsStringSlice(), ", "))
		}
		g := entity.UserGarment{Name: strings.TrimSpace(parts[0]), Type: typ}
		if len(parts) == 3 {
			g.Color = strings.TrimSpace(parts[2])
		}
		out = append(out, g)
	}
	return out, nil
}
