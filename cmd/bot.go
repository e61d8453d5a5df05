package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/rummy/internal/bot"
	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/hand"
	"github.com/arcanaland/rummy/internal/render"
)

// botCmd represents the bot command group
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Ask the heuristic bot for a move",
	Long: `Commands that run one step of the bot player on a hand. The bot's own recent
discards can be passed with --history (oldest first) so it does not take
them straight back.`,
}

// botDecideCmd represents the bot decide command
var botDecideCmd = &cobra.Command{
	Use:     "decide [cards...]",
	Short:   "Choose between drawing and taking the discard pile top",
	Example: `  rummy bot decide --top QH --wild 2S AS 3S 5S 7S 9S JS KS AH 3H 5H QC QD 9D`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, history, err := readBotHand(cmd, args)
		if err != nil {
			return err
		}
		if err := requireSize(h, cfg.Rules.HandSize); err != nil {
			return err
		}

		top, err := readTop(cmd, h)
		if err != nil {
			return err
		}

		jokers := jokersFor(h)
		agent := newAgent(newSolver(jokers), history)
		action := agent.Decide(h.Cards, top)

		if top != nil {
			fmt.Println(render.Label("Top", render.Card(*top, jokers)))
		} else {
			fmt.Println(render.Label("Top", "empty pile"))
		}
		fmt.Println(render.Label("Action", render.Verdict(action == bot.TakeDiscard, action.String(), action.String())))
		return nil
	},
}

// botDiscardCmd represents the bot discard command
var botDiscardCmd = &cobra.Command{
	Use:   "discard [cards...]",
	Short: "Choose the card the bot throws away",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, history, err := readBotHand(cmd, args)
		if err != nil {
			return err
		}

		jokers := jokersFor(h)
		agent := newAgent(newSolver(jokers), history)

		scores := make([]render.Score, len(h.Cards))
		for i, c := range h.Cards {
			scores[i] = render.Score{Card: c, Value: agent.EvaluateCardPotential(c, h.Cards)}
		}

		c, ok := agent.SelectDiscard(h.Cards)
		if !ok {
			return fmt.Errorf("hand is empty")
		}
		render.Scores(os.Stdout, scores, c.ID, jokers)
		fmt.Println(render.Label("Discard", render.Card(c, jokers)))
		fmt.Println(render.Label("History", fmt.Sprint(agent.RecentDiscards())))
		return nil
	},
}

// botDeclareCmd represents the bot declare command
var botDeclareCmd = &cobra.Command{
	Use:   "declare [cards...]",
	Short: "Report whether the bot can declare with a 14-card hand",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, history, err := readBotHand(cmd, args)
		if err != nil {
			return err
		}
		if err := requireSize(h, cfg.Rules.HandSize+1); err != nil {
			return err
		}

		jokers := jokersFor(h)
		s := newSolver(jokers)
		agent := newAgent(s, history)
		ok := agent.CanDeclare(h.Cards)
		fmt.Println(render.Label("Declare", render.Verdict(ok, "yes", "no")))
		if ok {
			c, _ := s.FindBestDiscardForWin(h.Cards)
			fmt.Println(render.Label("Discard", render.Card(c, jokers)))
		}
		return nil
	},
}

// readTop returns the discard pile top from --top, falling back to the hand
// file. The card never shares an identity with a card in the hand.
func readTop(cmd *cobra.Command, h *hand.Hand) (*card.Card, error) {
	flag, _ := cmd.Flags().GetString("top")
	if flag == "" {
		return h.Top, nil
	}
	c, err := hand.Extra(flag, h.Cards)
	if err != nil {
		return nil, fmt.Errorf("--top: %w", err)
	}
	return &c, nil
}

// readBotHand reads the hand and merges --history after any history from
// the hand file.
func readBotHand(cmd *cobra.Command, args []string) (*hand.Hand, []string, error) {
	h, err := readHand(cmd, args)
	if err != nil {
		return nil, nil, err
	}

	history := append([]string(nil), h.History...)
	flags, _ := cmd.Flags().GetStringSlice("history")
	for _, tok := range flags {
		face, _ := hand.SplitSuffix(tok)
		c, err := card.Parse(face)
		if err != nil {
			return nil, nil, fmt.Errorf("--history: %w", err)
		}
		history = append(history, hand.Identity(tok, c))
	}
	return h, history, nil
}

func init() {
	botCmd.AddCommand(botDecideCmd)
	botCmd.AddCommand(botDiscardCmd)
	botCmd.AddCommand(botDeclareCmd)

	for _, c := range []*cobra.Command{botDecideCmd, botDiscardCmd, botDeclareCmd} {
		addHandFlags(c)
		c.Flags().StringSlice("history", nil, "the bot's recent discards, oldest first")
	}
	botDecideCmd.Flags().StringP("top", "t", "", "card on top of the discard pile")
}
