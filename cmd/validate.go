package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/arachne/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a saved tableau layout",
	Long: `Validate checks a layout file (TOML) against its variant's deck: every card
code must parse, every suit must belong to the variant, and no card may appear
more often than the variant allows.

  variant = "two-suit"
  completed = 0
  stock = ["5H", "KC"]

  [[piles]]
  down = ["9C", "2H"]
  up = ["7C", "6C"]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layoutPath := args[0]

		// Check if path exists
		if _, err := os.Stat(layoutPath); os.IsNotExist(err) {
			return fmt.Errorf("layout file not found: %s", layoutPath)
		}

		v := validator.NewValidator(layoutPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		logger.Debug("layout validated", "path", layoutPath,
			"errors", len(results.Errors), "warnings", len(results.Warnings))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Layout '%s' is valid.\n", layoutPath)
		} else {
			fmt.Fprintf(out, "❌ Layout '%s' has %d validation errors:\n", layoutPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Piles) > 0 {
			fmt.Fprintln(out, "\nPiles:")
			for _, p := range results.Piles {
				fmt.Fprintf(out, "%2d. %2d cards, %2d face-up, top %-5s liftable run: %d\n",
					p.Index+1, p.Size, p.FaceUp, p.Top, p.Liftable)
			}
		}

		return nil
	},
}
