// Command dicebot is a Chronicles of Darkness dice-rolling assistant: it
// rolls d10 pools from expressions over named character attributes and
// keeps character sheets in a JSON store.
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/louisbranch/dicebot/internal/commands"
	"github.com/louisbranch/dicebot/internal/history"
	"github.com/louisbranch/dicebot/internal/platform/config"
)

var (
	verbose bool
	player  string

	logger  *zap.Logger
	handler *commands.Handler
)

var rootCmd = &cobra.Command{
	Use:   "dicebot",
	Short: "Chronicles of Darkness dice roller",
	Long: `dicebot rolls Chronicles of Darkness d10 pools.

Pools come from a number, the word 'chance', or an expression over named
character attributes, e.g.:

  dicebot roll 4
  dicebot roll chance
  dicebot roll "10 9again"
  dicebot roll "strength + 1 no10again"

Character sheets are edited with 'dicebot stats edit <name> <value>' and
persist in a JSON file (DICEBOT_DATA_PATH). 'dicebot play' starts an
interactive session that accepts '!'-prefixed commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Parse()
		if err != nil {
			return err
		}

		logger, err = buildLogger(cfg.LogConfigPath, verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		if player == "" {
			player = cfg.Player
		}
		if player == "" {
			if current, err := user.Current(); err == nil {
				player = current.Username
			}
		}

		handler = &commands.Handler{
			DataPath:  cfg.DataPath,
			MeritsDir: cfg.MeritsDir,
			Logger:    logger,
		}
		if cfg.HistoryPath != "" {
			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open roll history: %w", err)
			}
			handler.HistoryStore = store
		}

		logger.Debug("starting up",
			zap.String("player", player),
			zap.String("data_path", cfg.DataPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if handler != nil && handler.HistoryStore != nil {
			_ = handler.HistoryStore.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&player, "as", "", "character name to act as (defaults to DICEBOT_PLAYER, then the OS user)")

	rootCmd.AddCommand(rollCmd, statsCmd, characterCmd, meritCmd, historyCmd, sheetCmd, playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
