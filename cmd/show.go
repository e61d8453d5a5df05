package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [cards...]",
	Short: "Display a hand with suit colours",
	Long: `Show prints a hand with coloured suit symbols, wrapped to the terminal
width. Cards that are jokers under the turned wildcard are marked with *.

Examples:
  rummy show AS 2S 3S 4H JK --wild 2S
  rummy show --file hand.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := readHand(cmd, args)
		if err != nil {
			return err
		}

		jokers := jokersFor(h)
		width := render.TerminalWidth()

		fmt.Println()
		if h.Path != "" {
			fmt.Println("  " + render.Label("File", h.Path))
		}
		if h.Wild != nil {
			fmt.Println("  " + render.Label("Wild", render.Card(*h.Wild, card.JokerConfig{})))
		}
		if h.Top != nil {
			fmt.Println("  " + render.Label("Top", render.Card(*h.Top, jokers)))
		}

		_, wild := jokers.Split(h.Cards)
		fmt.Println("  " + render.Label("Cards", fmt.Sprintf("%d (%d wild)", len(h.Cards), len(wild))))
		fmt.Println()
		for _, line := range render.Hand(h.Cards, jokers, width-2) {
			fmt.Println("  " + line)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	addHandFlags(showCmd)
}
