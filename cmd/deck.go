package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/arachne/internal/card"
	"github.com/arcanaland/arachne/internal/config"
	"github.com/arcanaland/arachne/internal/deck"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build decks and manage the default variant",
}

// deckVariantsCmd lists the supported variants
var deckVariantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the supported game variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := cfg.Variant()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, v := range deck.Variants() {
			suits := make([]string, 0, len(v.Suits()))
			for _, s := range v.Suits() {
				suits = append(suits, s.Name())
			}

			marker := "  "
			if v == def {
				marker = colorize.GreenString("* ")
			}
			fmt.Fprintf(out, "%s%-10s %s × %d (%d cards)\n",
				marker, v, strings.Join(suits, ", "), v.Copies(), v.Size())
		}
		return nil
	},
}

// deckBuildCmd prints an unshuffled deck
var deckBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Print the unshuffled deck for a variant",
	Long: `Build prints every card of a variant's deck in dealing order: suits in
canonical order (clubs, diamonds, hearts, spades), each suit's copies back to
back, Ace through King within each copy.

With --faces the asset key of each card is printed instead, one per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("variant")
		faces, _ := cmd.Flags().GetBool("faces")

		v, err := resolveVariant(name)
		if err != nil {
			return err
		}

		cards, err := deck.Build(v)
		if err != nil {
			return err
		}
		logger.Debug("deck built", "variant", v, "cards", len(cards))

		out := cmd.OutOrStdout()
		if faces {
			for _, c := range cards {
				fmt.Fprintf(out, "%s\t%s\t%s\n", c.Code(), c.ID, c.Face)
			}
			return nil
		}

		p := newPainter(cfg.FourColor)
		labels := make([]string, 0, len(cards))
		for _, c := range cards {
			labels = append(labels, p.label(card.NewPlayable(c, true)))
		}

		fmt.Fprintf(out, "%s deck, %d cards\n", v, len(cards))
		for _, line := range wrapLabels(labels, terminalWidth()) {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [variant]",
	Short: "Set the default variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.SetDefaultVariant(args[0])
		if err != nil {
			return fmt.Errorf("error setting default variant: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default variant set to: %s\n", v)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The root pre-run has already created the file if it was missing
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// resolveVariant picks the flag value if set, else the configured default
func resolveVariant(name string) (deck.Variant, error) {
	if name == "" {
		return cfg.Variant()
	}
	return deck.ParseVariant(name)
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckVariantsCmd)
	deckCmd.AddCommand(deckBuildCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	deckBuildCmd.Flags().StringP("variant", "m", "", "Game variant (one-suit, two-suit, four-suit)")
	deckBuildCmd.Flags().Bool("faces", false, "Print card IDs and asset keys instead of labels")
}
