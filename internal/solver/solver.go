// Package solver decides whether a hand can be partitioned into legal melds
// and which card to discard from an over-full hand to reach such a partition.
package solver

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/combo"
	"github.com/arcanaland/rummy/internal/meld"
)

// MaxCards is the largest hand the bitmask search can hold.
const MaxCards = 64

// Result is the outcome of a win search. Melds is set only when Winning.
type Result struct {
	Winning bool
	Melds   []meld.Meld
}

// Solver runs the win search for one rule-set and joker configuration.
// It holds no per-hand state and may be shared by concurrent callers.
type Solver struct {
	validator  *meld.Validator
	rules      meld.Rules
	jokers     card.JokerConfig
	budget     int
	exhaustive bool
	log        logrus.FieldLogger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNodeBudget caps the number of search nodes visited per hand. A search
// that runs out of budget reports the hand as not winning. Zero means no cap.
func WithNodeBudget(n int) Option {
	return func(s *Solver) {
		s.budget = n
	}
}

// WithExhaustiveSweep disables suit/rank bucketing and enumerates candidate
// melds from every available card. Results are identical, only slower.
func WithExhaustiveSweep() Option {
	return func(s *Solver) {
		s.exhaustive = true
	}
}

// New returns a solver.
func New(rules meld.Rules, jokers card.JokerConfig, opts ...Option) *Solver {
	v := meld.NewValidator(rules, jokers)
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	s := &Solver{
		validator: v,
		rules:     v.Rules,
		jokers:    jokers,
		log:       quiet,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validator returns the meld validator the solver uses.
func (s *Solver) Validator() *meld.Validator {
	return s.validator
}

// Rules returns the normalized rule-set.
func (s *Solver) Rules() meld.Rules {
	return s.rules
}

// IsWinningHand reports whether cards form a winning hand.
func (s *Solver) IsWinningHand(cards []card.Card) bool {
	return s.Evaluate(cards).Winning
}

// ArrangeWinningHand returns the melds that make cards a winning hand.
func (s *Solver) ArrangeWinningHand(cards []card.Card) ([]meld.Meld, bool) {
	res := s.Evaluate(cards)
	return res.Melds, res.Winning
}

// Evaluate searches for a partition of cards into non-overlapping melds that
// satisfies the win format. It never panics; any internal failure is logged
// and reported as not winning.
func (s *Solver) Evaluate(cards []card.Card) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("win search failed, treating hand as not winning")
			res = Result{}
		}
	}()

	if len(cards) != s.rules.HandSize || len(cards) > MaxCards {
		s.log.WithField("cards", len(cards)).Debug("hand has the wrong size")
		return Result{}
	}

	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if seen[c.ID] {
			s.log.WithField("card", c.ID).Debug("duplicate card identity in hand")
			return Result{}
		}
		seen[c.ID] = true
	}

	sr := newSearch(s, cards)
	full := uint64(1)<<uint(len(cards)) - 1
	if !sr.solve(full, false, 0) {
		if sr.exhausted {
			s.log.WithFields(logrus.Fields{
				"budget": s.budget,
				"nodes":  sr.nodes,
			}).Warn("win search ran out of budget")
		}
		return Result{}
	}

	s.log.WithFields(logrus.Fields{
		"melds": len(sr.melds),
		"nodes": sr.nodes,
	}).Debug("winning arrangement found")
	return Result{Winning: true, Melds: sr.melds}
}

// FindBestDiscardForWin returns the first card, in hand order, whose removal
// leaves a winning hand. cards must hold exactly one card more than a hand.
func (s *Solver) FindBestDiscardForWin(cards []card.Card) (card.Card, bool) {
	if len(cards) != s.rules.HandSize+1 {
		s.log.WithField("cards", len(cards)).Debug("declare candidate has the wrong size")
		return card.Card{}, false
	}

	rest := make([]card.Card, 0, len(cards)-1)
	for i := range cards {
		rest = rest[:0]
		rest = append(rest, cards[:i]...)
		rest = append(rest, cards[i+1:]...)
		if s.IsWinningHand(rest) {
			s.log.WithField("discard", cards[i].ID).Debug("winning discard found")
			return cards[i], true
		}
	}
	return card.Card{}, false
}

// state is a memo key; sequences is capped at two.
type state struct {
	avail     uint64
	pure      bool
	sequences int
}

type search struct {
	s      *Solver
	cards  []card.Card
	index  map[string]int
	joker  []bool
	bySuit map[card.Suit][]card.Card
	byRank map[card.Rank][]card.Card
	jokers []card.Card
	failed map[state]bool
	melds  []meld.Meld
	nodes  int

	exhausted bool
}

func newSearch(s *Solver, cards []card.Card) *search {
	sr := &search{
		s:      s,
		cards:  cards,
		index:  make(map[string]int, len(cards)),
		joker:  make([]bool, len(cards)),
		bySuit: combo.BySuit(cards),
		byRank: combo.ByRank(cards),
		failed: make(map[state]bool),
	}
	for i, c := range cards {
		sr.index[c.ID] = i
		if s.jokers.IsJoker(c) {
			sr.joker[i] = true
			sr.jokers = append(sr.jokers, c)
		}
	}
	return sr
}

func (sr *search) done(pure bool, sequences int) bool {
	if !pure {
		return false
	}
	return !sr.s.rules.RequireSecondSequence || sequences >= 2
}

func (sr *search) solve(avail uint64, pure bool, sequences int) bool {
	if avail == 0 {
		return sr.done(pure, sequences)
	}
	if sequences > 2 {
		sequences = 2
	}
	key := state{avail: avail, pure: pure, sequences: sequences}
	if sr.failed[key] {
		return false
	}

	sr.nodes++
	if sr.s.budget > 0 && sr.nodes > sr.s.budget {
		sr.exhausted = true
		return false
	}

	for _, cand := range sr.candidates(avail) {
		m, ok := sr.s.validator.Meld(cand)
		if !ok {
			continue
		}
		next := avail
		for _, c := range cand {
			next &^= 1 << uint(sr.index[c.ID])
		}
		seq := sequences
		if m.Type.Sequence() {
			seq++
		}

		sr.melds = append(sr.melds, m)
		if sr.solve(next, pure || m.Type == meld.PureRun, seq) {
			return true
		}
		sr.melds = sr.melds[:len(sr.melds)-1]
		if sr.exhausted {
			return false
		}
	}

	sr.failed[key] = true
	return false
}

func (sr *search) available(avail uint64, group []card.Card) []card.Card {
	var out []card.Card
	for _, c := range group {
		if avail&(1<<uint(sr.index[c.ID])) != 0 {
			out = append(out, c)
		}
	}
	return out
}

// candidates lists the groups of available cards that could form the meld
// covering the anchor: the first available non-joker card. Every partition
// must cover the anchor, so no other groups need to be tried at this level.
func (sr *search) candidates(avail uint64) [][]card.Card {
	all := sr.available(avail, sr.cards)
	lo, hi := sr.s.rules.MinMeldSize, sr.s.rules.MaxMeldSize

	anchor := -1
	for i, c := range all {
		if !sr.joker[sr.index[c.ID]] {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		// Only jokers left.
		return combo.Sizes(all, lo, hi)
	}

	a := all[anchor]
	var pools [][]card.Card
	if sr.s.exhaustive {
		pools = [][]card.Card{without(all, a)}
	} else {
		jokers := sr.available(avail, sr.jokers)
		pools = [][]card.Card{
			without(combo.Union(sr.available(avail, sr.bySuit[a.Suit]), jokers), a),
			without(combo.Union(sr.available(avail, sr.byRank[a.Rank]), jokers), a),
		}
	}

	var out [][]card.Card
	seen := make(map[string]bool)
	for r := lo; r <= hi; r++ {
		for _, pool := range pools {
			for _, rest := range combo.Of(pool, r-1) {
				cand := append([]card.Card{a}, rest...)
				k := combo.Key(cand)
				if seen[k] {
					continue
				}
				seen[k] = true
				out = append(out, cand)
			}
		}
	}
	return out
}

func without(cards []card.Card, drop card.Card) []card.Card {
	out := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != drop.ID {
			out = append(out, c)
		}
	}
	return out
}
