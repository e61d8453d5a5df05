package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/render"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [cards...]",
	Short: "Check whether a 13-card hand can be declared",
	Long: `Check reports whether the hand splits completely into valid melds with at
least one pure sequence, and prints the arrangement when it does.

Examples:
  rummy check AS 2S 3S 4H 4D 4C KS KH KD 7S 7H 7D 7C --wild 2D
  rummy check --file hand.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := readHand(cmd, args)
		if err != nil {
			return err
		}
		if err := requireSize(h, cfg.Rules.HandSize); err != nil {
			return err
		}

		jokers := jokersFor(h)
		res := newSolver(jokers).Evaluate(h.Cards)

		fmt.Println(render.Label("Hand", render.Cards(h.Cards, jokers)))
		fmt.Println(render.Label("Result", render.Verdict(res.Winning, "winning", "not winning")))
		if res.Winning {
			render.Melds(os.Stdout, res.Melds, jokers)
		}
		return nil
	},
}

// arrangeCmd represents the arrange command
var arrangeCmd = &cobra.Command{
	Use:   "arrange [cards...]",
	Short: "Print the meld arrangement of a winning hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := readHand(cmd, args)
		if err != nil {
			return err
		}
		if err := requireSize(h, cfg.Rules.HandSize); err != nil {
			return err
		}

		jokers := jokersFor(h)
		melds, ok := newSolver(jokers).ArrangeWinningHand(h.Cards)
		if !ok {
			return fmt.Errorf("hand has no winning arrangement")
		}
		render.Melds(os.Stdout, melds, jokers)
		return nil
	},
}

func init() {
	addHandFlags(checkCmd)
	addHandFlags(arrangeCmd)
}
