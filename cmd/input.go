package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/bot"
	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/hand"
	"github.com/arcanaland/rummy/internal/solver"
)

// addHandFlags registers the flags shared by every command that reads a hand.
func addHandFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read the hand from a TOML hand file")
	cmd.Flags().StringP("wild", "w", "", "turned wildcard card, e.g. 2S")
}

// readHand builds a hand from --file or from card arguments. --wild
// overrides the wildcard from the file.
func readHand(cmd *cobra.Command, args []string) (*hand.Hand, error) {
	var (
		h   *hand.Hand
		err error
	)

	if path, _ := cmd.Flags().GetString("file"); path != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either --file or card arguments, not both")
		}
		h, err = hand.Load(path)
		if err != nil {
			return nil, err
		}
	} else {
		cards, err := hand.Parse(args)
		if err != nil {
			return nil, err
		}
		h = &hand.Hand{Cards: cards}
	}

	if wild, _ := cmd.Flags().GetString("wild"); wild != "" {
		w, err := card.Parse(wild)
		if err != nil {
			return nil, fmt.Errorf("--wild: %w", err)
		}
		h.Wild = &w
	}
	return h, nil
}

// jokersFor expands the hand's wildcard with the configured joker options.
// Without a wildcard only printed jokers are wild.
func jokersFor(h *hand.Hand) card.JokerConfig {
	if h.Wild == nil {
		return card.JokerConfig{}
	}
	return card.NewJokerConfig(*h.Wild, cfg.JokerOptions())
}

func newSolver(jokers card.JokerConfig) *solver.Solver {
	return solver.New(cfg.MeldRules(), jokers,
		solver.WithLogger(logger),
		solver.WithNodeBudget(cfg.Search.NodeBudget),
	)
}

func newAgent(s *solver.Solver, history []string) *bot.Agent {
	return bot.New(s,
		bot.WithWeights(cfg.Bot),
		bot.WithLogger(logger),
		bot.WithHistory(history...),
	)
}

// requireSize rejects hands of the wrong length before the engine quietly
// reports them as not winning.
func requireSize(h *hand.Hand, n int) error {
	if len(h.Cards) != n {
		return fmt.Errorf("expected %d cards, got %d", n, len(h.Cards))
	}
	return nil
}
