// Package bot implements a heuristic rummy player on top of the win search.
package bot

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/solver"
)

// Action is the agent's choice at the start of a turn.
type Action int

const (
	Draw Action = iota
	TakeDiscard
)

func (a Action) String() string {
	if a == TakeDiscard {
		return "take discard"
	}
	return "draw"
}

// Agent is one bot player. It remembers its own recent discards so that it
// does not take back a card it just threw away. An Agent is not safe for
// concurrent use; give every seat its own.
type Agent struct {
	solver  *solver.Solver
	jokers  card.JokerConfig
	weights Weights
	recent  history
	log     logrus.FieldLogger
}

// Option configures an Agent.
type Option func(*Agent)

// WithWeights replaces the default scoring table.
func WithWeights(w Weights) Option {
	return func(a *Agent) {
		a.weights = w
	}
}

// WithLogger sets the logger decisions are reported to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Agent) {
		if l != nil {
			a.log = l
		}
	}
}

// WithHistory seeds the discard history, oldest first.
func WithHistory(ids ...string) Option {
	return func(a *Agent) {
		for _, id := range ids {
			a.recent.push(id)
		}
	}
}

// New returns an agent that plays with the rules and jokers of s.
func New(s *solver.Solver, opts ...Option) *Agent {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	a := &Agent{
		solver:  s,
		jokers:  s.Validator().Jokers,
		weights: DefaultWeights(),
		log:     quiet,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecentDiscards returns the identities of the agent's last discards,
// oldest first.
func (a *Agent) RecentDiscards() []string {
	return a.recent.list()
}

// Decide chooses between drawing from the stock and taking top, the card on
// the discard pile. top may be nil when the pile is empty.
func (a *Agent) Decide(hand []card.Card, top *card.Card) Action {
	action, reason := a.decide(hand, top)
	fields := logrus.Fields{"action": action.String(), "reason": reason}
	if top != nil {
		fields["top"] = top.ID
	}
	a.log.WithFields(fields).Debug("turn decision")
	return action
}

func (a *Agent) decide(hand []card.Card, top *card.Card) (Action, string) {
	if top == nil {
		return Draw, "empty discard pile"
	}
	if a.recent.contains(top.ID) {
		return Draw, "own recent discard"
	}
	if a.jokers.IsJoker(*top) {
		return TakeDiscard, "joker"
	}

	withTop := make([]card.Card, 0, len(hand)+1)
	withTop = append(withTop, hand...)
	withTop = append(withTop, *top)
	if _, ok := a.solver.FindBestDiscardForWin(withTop); ok {
		return TakeDiscard, "completes hand"
	}

	sameRank, sameSuit, sequence := 0, 0, false
	for _, c := range hand {
		if a.jokers.IsJoker(c) || c.Malformed() {
			continue
		}
		if c.Rank == top.Rank {
			sameRank++
		}
		if c.Suit == top.Suit {
			sameSuit++
			if distance(c.Rank, top.Rank) <= 2 {
				sequence = true
			}
		}
	}

	w := a.weights
	switch {
	case sameRank >= w.TakeSameRank:
		return TakeDiscard, "set potential"
	case sequence && sameSuit >= w.TakeSuitWithSequence:
		return TakeDiscard, "sequence potential"
	case sequence && sameSuit >= w.TakeSuitDense:
		return TakeDiscard, "dense suit"
	}
	return Draw, "no use for discard"
}

// SelectDiscard picks the card to throw away and records it in the discard
// history. With a full declare-size hand, a discard that wins is preferred.
// Otherwise the lowest-scoring non-joker goes, earliest in hand order on
// ties; jokers are only discarded from an all-joker hand.
func (a *Agent) SelectDiscard(hand []card.Card) (card.Card, bool) {
	if len(hand) == 0 {
		return card.Card{}, false
	}

	if len(hand) == a.solver.Rules().HandSize+1 {
		if c, ok := a.solver.FindBestDiscardForWin(hand); ok {
			a.recent.push(c.ID)
			a.log.WithField("discard", c.ID).Debug("discarding for the win")
			return c, true
		}
	}

	candidates := make([]card.Card, 0, len(hand))
	for _, c := range hand {
		if !a.jokers.IsJoker(c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = hand
	}

	best := candidates[0]
	bestScore := a.EvaluateCardPotential(best, hand)
	for _, c := range candidates[1:] {
		if s := a.EvaluateCardPotential(c, hand); s < bestScore {
			best, bestScore = c, s
		}
	}

	a.recent.push(best.ID)
	a.log.WithFields(logrus.Fields{
		"discard": best.ID,
		"score":   bestScore,
	}).Debug("discarding weakest card")
	return best, true
}

// CanDeclare reports whether a declare-size hand has a winning discard.
func (a *Agent) CanDeclare(hand []card.Card) bool {
	_, ok := a.solver.FindBestDiscardForWin(hand)
	return ok
}

// EvaluateCardPotential scores how useful c is to hand. Higher is better.
func (a *Agent) EvaluateCardPotential(c card.Card, hand []card.Card) int {
	w := a.weights
	if a.jokers.IsJoker(c) {
		return w.Joker
	}
	if c.Malformed() {
		return w.Isolated
	}

	sameRank, sameSuit, neighbours := 0, 0, 0
	score := 0
	for _, o := range hand {
		if o.ID == c.ID || a.jokers.IsJoker(o) || o.Malformed() {
			continue
		}
		if o.Rank == c.Rank {
			sameRank++
		}
		if o.Suit != c.Suit {
			continue
		}
		sameSuit++
		switch distance(o.Rank, c.Rank) {
		case 1:
			score += w.Adjacent
			neighbours++
		case 2:
			score += w.NearAdjacent
			neighbours++
		}
	}

	switch {
	case sameRank >= 3:
		score += w.RankTriple
	case sameRank == 2:
		score += w.RankPair
	case sameRank == 1:
		score += w.RankSingle
	}

	switch {
	case sameSuit >= 5:
		score += w.SuitDense
	case sameSuit >= 3:
		score += w.SuitGroup
	case sameSuit >= 2:
		score += w.SuitPair
	}

	if sameRank == 0 && sameSuit < 2 && neighbours == 0 {
		score += w.Isolated
	}

	switch {
	case c.Rank >= card.Four && c.Rank <= card.Ten:
		score += w.MiddleRank
	case c.Rank != card.Ace && c.Rank != card.King:
		score += w.InnerRank
	}

	return score
}

// distance is the rank gap between a and b, counting the ace as either
// low or high, whichever is closer.
func distance(a, b card.Rank) int {
	low := abs(a.Index() - b.Index())
	high := abs(a.HighIndex() - b.HighIndex())
	if high < low {
		return high
	}
	return low
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
