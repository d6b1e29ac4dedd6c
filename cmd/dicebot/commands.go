package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/louisbranch/dicebot/internal/sheet"
	"github.com/louisbranch/dicebot/internal/storage/jsonfile"
)

var rollCmd = &cobra.Command{
	Use:   "roll <expression>",
	Short: "Roll a dice pool",
	Long: `Rolls a d10 pool. The expression is a number, 'chance', or arithmetic
over attribute names, optionally with a re-roll keyword (9again, 8again,
no10again).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := handler.Roll(cmd.Context(), player, strings.Join(args, " "))
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [print|show|edit <name> <value>]",
	Short: "Print or edit the character sheet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := handler.Stats(cmd.Context(), player, args)
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	},
}

var characterCmd = &cobra.Command{
	Use:   "character [print|edit <name> <value>]",
	Short: "Print or edit the character sheet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := handler.Character(cmd.Context(), player, args)
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	},
}

var meritCmd = &cobra.Command{
	Use:   "merit <name>",
	Short: "Look up a merit reference image",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := handler.Merit(strings.Join(args, " "))
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent rolls",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := handler.History(cmd.Context(), player, 10)
		if err != nil {
			return err
		}
		printReply(reply)
		return nil
	},
}

var sheetCmd = &cobra.Command{
	Use:   "sheet <output.pdf>",
	Short: "Export the character sheet as a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := jsonfile.Load(handler.DataPath)
		data, err := sheet.Export(store.GetOrCreate(player))
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write sheet: %w", err)
		}
		fmt.Println("Sheet written to", args[0])
		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive session reading !-prefixed commands",
	Long: `Reads lines from standard input and dispatches '!'-prefixed commands
(!roll, !stats, !character, !help, !merit, !history). Type 'quit' or press
Ctrl-D to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "quit" {
				return nil
			}
			reply, err := handler.Dispatch(cmd.Context(), player, line)
			if err != nil {
				// Keep the session alive; a failed command is not fatal.
				fmt.Println("Error:", err)
				continue
			}
			printReply(reply)
		}
		return scanner.Err()
	},
}

func printReply(reply string) {
	if reply != "" {
		fmt.Println(reply)
	}
}
