package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/render"
)

// discardCmd represents the discard command
var discardCmd = &cobra.Command{
	Use:   "discard [cards...]",
	Short: "Find the discard that turns a 14-card hand into a win",
	Long: `Discard tries every card of a 14-card hand in order and reports the first
one whose removal leaves a winning hand, with the resulting arrangement.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := readHand(cmd, args)
		if err != nil {
			return err
		}
		if err := requireSize(h, cfg.Rules.HandSize+1); err != nil {
			return err
		}

		jokers := jokersFor(h)
		s := newSolver(jokers)
		c, ok := s.FindBestDiscardForWin(h.Cards)
		if !ok {
			fmt.Println(render.Label("Discard", render.Verdict(false, "", "no winning discard")))
			return nil
		}

		fmt.Println(render.Label("Discard", render.Card(c, jokers)))
		rest := make([]card.Card, 0, len(h.Cards)-1)
		for _, o := range h.Cards {
			if o.ID != c.ID {
				rest = append(rest, o)
			}
		}
		if melds, ok := s.ArrangeWinningHand(rest); ok {
			render.Melds(os.Stdout, melds, jokers)
		}
		return nil
	},
}

func init() {
	addHandFlags(discardCmd)
}
