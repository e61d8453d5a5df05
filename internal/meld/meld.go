package meld

import (
	"sort"
	"strings"

	"github.com/arcanaland/rummy/internal/card"
)

// Type tags the kind of a meld.
type Type int

const (
	PureRun Type = iota
	RunWithJoker
	Set
	IdenticalTriplet
)

func (t Type) String() string {
	switch t {
	case PureRun:
		return "pure run"
	case RunWithJoker:
		return "run with joker"
	case Set:
		return "set"
	case IdenticalTriplet:
		return "identical triplet"
	default:
		return "unknown"
	}
}

// Sequence reports whether the meld type is a run of either kind.
func (t Type) Sequence() bool {
	return t == PureRun || t == RunWithJoker
}

// Meld is a group of cards of a recognised type.
type Meld struct {
	Type  Type
	Cards []card.Card
}

func (m Meld) String() string {
	parts := make([]string, len(m.Cards))
	for i, c := range m.Cards {
		parts[i] = c.String()
	}
	return m.Type.String() + " [" + strings.Join(parts, " ") + "]"
}

// Rules is the rule-set a validator and the win search apply.
type Rules struct {
	// RequireSecondSequence makes a win need a second run (pure or with joker)
	// in addition to the mandatory pure run.
	RequireSecondSequence bool
	// IdenticalTriplet enables the three-identical-cards meld (tanala).
	IdenticalTriplet bool
	// NaturalWildcards lets a non-printed joker card stand for its own face,
	// so it may appear in a pure run or set at its natural position.
	NaturalWildcards bool
	// DistinctSuitSets requires the non-joker cards of a set to have distinct suits.
	DistinctSuitSets bool

	MinMeldSize int
	MaxMeldSize int
	HandSize    int
}

// DefaultRules returns the rule-set used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		IdenticalTriplet: true,
		NaturalWildcards: true,
		DistinctSuitSets: true,
		MinMeldSize:      3,
		MaxMeldSize:      5,
		HandSize:         13,
	}
}

// Validator decides whether a group of cards forms a legal meld.
// All methods are pure and return false for malformed input.
type Validator struct {
	Rules  Rules
	Jokers card.JokerConfig
}

// NewValidator returns a validator for a rule-set and joker configuration.
func NewValidator(rules Rules, jokers card.JokerConfig) *Validator {
	if rules.MinMeldSize < 3 {
		rules.MinMeldSize = 3
	}
	if rules.MaxMeldSize < rules.MinMeldSize {
		rules.MaxMeldSize = rules.MinMeldSize
	}
	return &Validator{Rules: rules, Jokers: jokers}
}

// jokerTests returns the joker predicates to try, strict first.
func (v *Validator) jokerTests() []func(card.Card) bool {
	tests := []func(card.Card) bool{v.Jokers.IsJoker}
	if v.Rules.NaturalWildcards {
		tests = append(tests, func(c card.Card) bool { return c.Printed })
	}
	return tests
}

func (v *Validator) usable(cards []card.Card) bool {
	if len(cards) < v.Rules.MinMeldSize {
		return false
	}
	for _, c := range cards {
		if c.ID == "" {
			return false
		}
		if c.Malformed() && !v.Jokers.IsJoker(c) {
			return false
		}
	}
	return true
}

// IsPureRun reports whether cards are three or more consecutive cards of one
// suit without joker substitution. The ace is low only.
func (v *Validator) IsPureRun(cards []card.Card) bool {
	if !v.usable(cards) {
		return false
	}
	for _, isJoker := range v.jokerTests() {
		if pureRun(cards, isJoker) {
			return true
		}
	}
	return false
}

func pureRun(cards []card.Card, isJoker func(card.Card) bool) bool {
	suit := cards[0].Suit
	idx := make([]int, 0, len(cards))
	for _, c := range cards {
		if isJoker(c) || c.Malformed() || c.Suit != suit {
			return false
		}
		idx = append(idx, c.Rank.Index())
	}
	sort.Ints(idx)
	for i := 1; i < len(idx); i++ {
		if idx[i] != idx[i-1]+1 {
			return false
		}
	}
	return true
}

// IsRunWithJoker reports whether jokers can fill every rank gap between the
// non-joker cards of one suit. Both ace-low and ace-high numberings are tried.
func (v *Validator) IsRunWithJoker(cards []card.Card) bool {
	if !v.usable(cards) || len(cards) > len(card.Ranks) {
		return false
	}
	for _, isJoker := range v.jokerTests() {
		if runWithJoker(cards, isJoker) {
			return true
		}
	}
	return false
}

func runWithJoker(cards []card.Card, isJoker func(card.Card) bool) bool {
	var naturals []card.Card
	jokers := 0
	for _, c := range cards {
		if isJoker(c) {
			jokers++
		} else {
			naturals = append(naturals, c)
		}
	}
	if len(naturals) == 0 {
		return false
	}

	suit := naturals[0].Suit
	hasAce := false
	for _, c := range naturals {
		if c.Malformed() || c.Suit != suit {
			return false
		}
		if c.Rank == card.Ace {
			hasAce = true
		}
	}

	if gapsFilled(naturals, jokers, card.Rank.Index) {
		return true
	}
	return hasAce && gapsFilled(naturals, jokers, card.Rank.HighIndex)
}

func gapsFilled(naturals []card.Card, jokers int, index func(card.Rank) int) bool {
	idx := make([]int, len(naturals))
	for i, c := range naturals {
		idx[i] = index(c.Rank)
	}
	sort.Ints(idx)

	gaps := 0
	for i := 1; i < len(idx); i++ {
		d := idx[i] - idx[i-1]
		if d == 0 {
			return false
		}
		gaps += d - 1
	}
	return jokers >= gaps
}

// IsSet reports whether cards are three or four cards of one rank, with
// jokers filling the remaining slots.
func (v *Validator) IsSet(cards []card.Card) bool {
	if !v.usable(cards) || len(cards) > 4 {
		return false
	}
	for _, isJoker := range v.jokerTests() {
		if v.set(cards, isJoker) {
			return true
		}
	}
	return false
}

func (v *Validator) set(cards []card.Card, isJoker func(card.Card) bool) bool {
	var rank card.Rank
	suits := make(map[card.Suit]bool)
	naturals := 0
	for _, c := range cards {
		if isJoker(c) {
			continue
		}
		if c.Malformed() {
			return false
		}
		if naturals == 0 {
			rank = c.Rank
		} else if c.Rank != rank {
			return false
		}
		if v.Rules.DistinctSuitSets && suits[c.Suit] {
			return false
		}
		suits[c.Suit] = true
		naturals++
	}
	return naturals > 0
}

// IsIdenticalTriplet reports whether cards are exactly three copies of the
// same rank and suit. Jokers may not substitute in this meld.
func (v *Validator) IsIdenticalTriplet(cards []card.Card) bool {
	if !v.Rules.IdenticalTriplet || len(cards) != 3 || !v.usable(cards) {
		return false
	}
	for _, isJoker := range v.jokerTests() {
		if identical(cards, isJoker) {
			return true
		}
	}
	return false
}

func identical(cards []card.Card, isJoker func(card.Card) bool) bool {
	k := cards[0].Key()
	for _, c := range cards {
		if isJoker(c) || c.Malformed() || c.Key() != k {
			return false
		}
	}
	return true
}

// Classify returns the first meld type that cards satisfy, trying
// PureRun, RunWithJoker, Set and IdenticalTriplet in that order.
func (v *Validator) Classify(cards []card.Card) (Type, bool) {
	switch {
	case v.IsPureRun(cards):
		return PureRun, true
	case v.IsRunWithJoker(cards):
		return RunWithJoker, true
	case v.IsSet(cards):
		return Set, true
	case v.IsIdenticalTriplet(cards):
		return IdenticalTriplet, true
	}
	return 0, false
}

// Meld classifies cards and wraps them in a Meld when they are legal.
// The returned meld holds its own copy of the slice.
func (v *Validator) Meld(cards []card.Card) (Meld, bool) {
	t, ok := v.Classify(cards)
	if !ok {
		return Meld{}, false
	}
	return Meld{Type: t, Cards: append([]card.Card(nil), cards...)}, true
}
