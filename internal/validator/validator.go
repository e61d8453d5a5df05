package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/rummy/internal/bot"
	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/hand"
	"github.com/arcanaland/rummy/internal/meld"
)

// MaxPrintedJokers is the number of printed jokers above which a hand is
// flagged; two decks carry four.
const MaxPrintedJokers = 4

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	HandPath string
	Rules    meld.Rules
	Results  ValidationResults

	file  hand.File
	cards []card.Card
}

func NewValidator(handPath string, rules meld.Rules) *Validator {
	return &Validator{
		HandPath: handPath,
		Rules:    rules,
		Results:  ValidationResults{},
	}
}

// Validate checks a hand file. The returned error is set only when the file
// cannot be read at all; rule problems are reported in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateHandToml(); err != nil {
		return v.Results, err
	}

	v.validateCards()
	v.validateSize()
	v.validateCopies()
	v.validateWild()
	v.validateTop()
	v.validateHistory()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateHandToml() error {
	if _, err := os.Stat(v.HandPath); os.IsNotExist(err) {
		return fmt.Errorf("hand file not found: %s", v.HandPath)
	}
	if _, err := toml.DecodeFile(v.HandPath, &v.file); err != nil {
		return fmt.Errorf("error parsing %s: %w", v.HandPath, err)
	}
	if len(v.file.Cards) == 0 {
		v.errorf("cards is required")
	}
	return nil
}

// validateCards parses every card token on its own so that all bad tokens
// are reported, not just the first.
func (v *Validator) validateCards() {
	valid := make([]string, 0, len(v.file.Cards))
	for i, tok := range v.file.Cards {
		if _, err := hand.Parse([]string{tok}); err != nil {
			v.errorf("cards[%d]: %v", i, err)
			continue
		}
		valid = append(valid, tok)
	}

	cards, err := hand.Parse(valid)
	if err != nil {
		v.errorf("%v", err)
		return
	}
	v.cards = cards
}

func (v *Validator) validateSize() {
	n := len(v.file.Cards)
	if n == 0 {
		return
	}
	if n != v.Rules.HandSize && n != v.Rules.HandSize+1 {
		v.errorf("hand has %d cards, expected %d (evaluation) or %d (declare)",
			n, v.Rules.HandSize, v.Rules.HandSize+1)
	}
}

func (v *Validator) validateCopies() {
	faces := make(map[string]int)
	printed := 0
	for _, c := range v.cards {
		if c.Printed {
			printed++
			continue
		}
		faces[c.Code()]++
	}

	if printed > MaxPrintedJokers {
		v.warnf("%d printed jokers in hand; two decks carry %d", printed, MaxPrintedJokers)
	}
	for _, c := range v.cards {
		n := faces[c.Code()]
		if n > 2 {
			v.warnf("%s appears %d times; needs at least %d decks", c.Code(), n, n)
			faces[c.Code()] = 0
		}
	}
}

func (v *Validator) validateWild() {
	if v.file.Wild == "" {
		v.warnf("no wild card set; only printed jokers act as jokers")
		return
	}
	if _, err := card.Parse(v.file.Wild); err != nil {
		v.errorf("wild: %v", err)
	}
}

func (v *Validator) validateTop() {
	if v.file.Top == "" {
		return
	}
	if _, err := hand.Extra(v.file.Top, v.cards); err != nil {
		v.errorf("top: %v", err)
		return
	}
	if len(v.file.Cards) != v.Rules.HandSize {
		v.warnf("top card is only used with a %d-card hand", v.Rules.HandSize)
	}
}

func (v *Validator) validateHistory() {
	for i, tok := range v.file.History {
		face, _ := hand.SplitSuffix(tok)
		if _, err := card.Parse(face); err != nil {
			v.errorf("history[%d]: %v", i, err)
		}
	}
	if n := len(v.file.History); n > bot.HistorySize {
		v.warnf("history has %d entries; only the last %d are kept", n, bot.HistorySize)
	}
}
