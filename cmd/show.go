package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/arachne/internal/card"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [cards...]",
	Short: "Display cards and their asset keys",
	Long: `Show draws each card as a small terminal card and prints the key the
renderer uses to find its face image.

Examples:
  arachne show QH
  arachne show --four-color 10D _KS`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.ParseTokens(args)
		if err != nil {
			return err
		}

		fourColor := cfg.FourColor
		if cmd.Flags().Changed("four-color") {
			fourColor, _ = cmd.Flags().GetBool("four-color")
		}
		p := newPainter(fourColor)

		out := cmd.OutOrStdout()
		for _, c := range cards {
			for _, line := range cardBox(p, c) {
				fmt.Fprintln(out, "  "+line)
			}
			fmt.Fprintln(out, "  "+colorize.CyanString("Face: ")+colorize.HiWhiteString(c.Face))
			fmt.Fprintln(out)
		}
		return nil
	},
}

// cardBox draws a five-line card outline with the label in opposite corners
func cardBox(p painter, c *card.PlayableCard) []string {
	const inner = 7
	label := p.label(c)
	pad := inner - visibleWidth(label)
	if pad < 0 {
		pad = 0
	}

	name := c.Rank.Token() + " of " + c.Suit.Name()
	if !c.FaceUp {
		name += " (face-down)"
	}

	return []string{
		"┌" + strings.Repeat("─", inner) + "┐",
		"│" + label + strings.Repeat(" ", pad) + "│  " + colorize.CyanString("Card: ") + colorize.HiWhiteString(name),
		"│" + strings.Repeat(" ", inner) + "│  " + colorize.CyanString("Code: ") + colorize.HiWhiteString(c.Code()),
		"│" + strings.Repeat(" ", pad) + label + "│",
		"└" + strings.Repeat("─", inner) + "┘",
	}
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("four-color", false, "Use four-color suits (overrides config)")
}
