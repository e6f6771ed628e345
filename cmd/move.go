package cmd

import (
	"errors"
	"fmt"

	"github.com/arcanaland/arachne/internal/card"
	"github.com/arcanaland/arachne/internal/rules"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ErrIllegalMove is returned after an illegal verdict has been printed
var ErrIllegalMove = errors.New("illegal move")

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Check whether a run of cards can be lifted or dropped",
}

var moveLiftCmd = &cobra.Command{
	Use:   "lift [cards...]",
	Short: "Check whether a run can be picked up as one unit",
	Long: `Lift checks a run given top card first, e.g.

  arachne move lift 7C 6C 5C

Every card must be face-up and each card must be the same suit as, and exactly
one rank above, the card after it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := card.ParseTokens(args)
		if err != nil {
			return err
		}

		ok := rules.CanLift(seq)
		logger.Debug("lift checked", "cards", len(seq), "legal", ok)
		return verdict(cmd, ok, runLabel(seq), "can be lifted", "cannot be lifted")
	},
}

var moveDropCmd = &cobra.Command{
	Use:   "drop [cards...]",
	Short: "Check whether a run can be dropped on a pile",
	Long: `Drop checks a run, lead card first, against the top card of the destination
pile. Leave out --onto for an empty pile.

  arachne move drop --onto 8C 7H 6H
  arachne move drop --onto _8C 7H`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		onto, _ := cmd.Flags().GetString("onto")

		moving, err := card.ParseTokens(args)
		if err != nil {
			return err
		}

		var target *card.PlayableCard
		dest := "an empty pile"
		if onto != "" {
			if target, err = card.ParseToken(onto); err != nil {
				return err
			}
			dest = newPainter(cfg.FourColor).label(target)
		}

		ok := rules.CanDrop(moving, target)
		logger.Debug("drop checked", "cards", len(moving), "onto", onto, "legal", ok)
		return verdict(cmd, ok, runLabel(moving), "can be dropped on "+dest, "cannot be dropped on "+dest)
	},
}

var moveHintCmd = &cobra.Command{
	Use:   "hint [pile...]",
	Short: "Show the longest run that can be lifted from a pile",
	Long: `Hint takes a pile bottom card first (as it lies on the table) and prints the
longest run at its top that can be lifted.

  arachne move hint _KS _4H 9H 8C 7C`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pile, err := card.ParseTokens(args)
		if err != nil {
			return err
		}

		start := rules.LiftableTail(pile)
		out := cmd.OutOrStdout()
		if start == len(pile) {
			fmt.Fprintln(out, "Nothing can be lifted: the top card is face-down")
			return nil
		}

		// Runs are lifted top card first, which is the order they lie in the pile
		tail := pile[start:]
		fmt.Fprintf(out, "%d card(s) can be lifted: %s\n", len(tail), runLabel(tail))
		return nil
	},
}

func verdict(cmd *cobra.Command, ok bool, subject, yes, no string) error {
	out := cmd.OutOrStdout()
	if ok {
		fmt.Fprintf(out, "%s %s %s\n", colorize.GreenString("✔"), subject, yes)
		return nil
	}
	fmt.Fprintf(out, "%s %s %s\n", colorize.RedString("✘"), subject, no)
	return ErrIllegalMove
}

func runLabel(seq []*card.PlayableCard) string {
	p := newPainter(cfg.FourColor)
	labels := make([]string, 0, len(seq))
	for _, c := range seq {
		labels = append(labels, p.label(c))
	}
	return fmt.Sprint(labels)
}

func init() {
	RootCmd.AddCommand(moveCmd)
	moveCmd.AddCommand(moveLiftCmd)
	moveCmd.AddCommand(moveDropCmd)
	moveCmd.AddCommand(moveHintCmd)

	moveDropCmd.Flags().StringP("onto", "o", "", "Top card of the destination pile (empty pile if omitted)")
}
