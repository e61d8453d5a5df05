package solver

import (
	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/meld"
)

// IsWinningHand reports whether a 13-card hand wins under the default rules.
func IsWinningHand(cards []card.Card, jokers card.JokerConfig) bool {
	return New(meld.DefaultRules(), jokers).IsWinningHand(cards)
}

// FindBestDiscardForWin returns the first card of a 14-card hand whose
// removal wins under the default rules.
func FindBestDiscardForWin(cards []card.Card, jokers card.JokerConfig) (card.Card, bool) {
	return New(meld.DefaultRules(), jokers).FindBestDiscardForWin(cards)
}

// ArrangeWinningHand returns the winning melds of a 13-card hand under the
// default rules, or false when the hand does not win.
func ArrangeWinningHand(cards []card.Card, jokers card.JokerConfig) ([]meld.Meld, bool) {
	return New(meld.DefaultRules(), jokers).ArrangeWinningHand(cards)
}
