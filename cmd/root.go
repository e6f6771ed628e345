package cmd

import (
	"log/slog"

	"github.com/arcanaland/arachne/internal/config"
	"github.com/arcanaland/arachne/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg     = config.Default()
	logger  = logging.Discard
	verbose bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "arachne",
	Short: "Deck builder and move rules for Spider Solitaire",
	Long: `Arachne builds Spider Solitaire decks for the one-suit, two-suit and four-suit
variants and checks whether a run of cards may be lifted or dropped on a pile.

Cards are written as rank then suit (7H, 10S, KC, A♠). Prefix a card with _ to
mark it face-down (_8C).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}

		level, err := c.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		cfg = c
		logger = logging.Setup(cmd.ErrOrStderr(), level)
		logger.Debug("config loaded", "path", config.GetConfigFilePath(), "default_variant", cfg.DefaultVariant)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
