// Package combo enumerates fixed-size subsets of a hand and buckets cards
// so that callers only enumerate the cards that can share a meld.
package combo

import (
	"sort"
	"strings"

	"github.com/arcanaland/rummy/internal/card"
)

// Of returns every size-r subset of cards in choose/don't-choose order.
// Subsets that contain the same identities as an earlier subset are dropped,
// so repeated cards in the input never produce the same subset twice.
func Of(cards []card.Card, r int) [][]card.Card {
	if r <= 0 || r > len(cards) {
		return nil
	}

	var out [][]card.Card
	seen := make(map[string]bool)
	buf := make([]card.Card, 0, r)

	var walk func(start int)
	walk = func(start int) {
		if len(buf) == r {
			k := Key(buf)
			if seen[k] {
				return
			}
			seen[k] = true
			out = append(out, append([]card.Card(nil), buf...))
			return
		}
		// Not enough cards left to fill the subset.
		if len(cards)-start < r-len(buf) {
			return
		}
		for i := start; i < len(cards); i++ {
			buf = append(buf, cards[i])
			walk(i + 1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0)

	return out
}

// Sizes returns the subsets of every size in [lo, hi], smallest first.
func Sizes(cards []card.Card, lo, hi int) [][]card.Card {
	var out [][]card.Card
	for r := lo; r <= hi; r++ {
		out = append(out, Of(cards, r)...)
	}
	return out
}

// Key returns the canonical sorted-identity key of a group of cards.
func Key(cards []card.Card) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// BySuit groups the non-printed cards of a hand by suit, preserving order.
func BySuit(cards []card.Card) map[card.Suit][]card.Card {
	out := make(map[card.Suit][]card.Card)
	for _, c := range cards {
		if c.Printed || !c.Suit.Valid() {
			continue
		}
		out[c.Suit] = append(out[c.Suit], c)
	}
	return out
}

// ByRank groups the non-printed cards of a hand by rank, preserving order.
func ByRank(cards []card.Card) map[card.Rank][]card.Card {
	out := make(map[card.Rank][]card.Card)
	for _, c := range cards {
		if c.Printed || !c.Rank.Valid() {
			continue
		}
		out[c.Rank] = append(out[c.Rank], c)
	}
	return out
}

// Union concatenates groups, keeping the first occurrence of each identity.
func Union(groups ...[]card.Card) []card.Card {
	seen := make(map[string]bool)
	var out []card.Card
	for _, g := range groups {
		for _, c := range g {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			out = append(out, c)
		}
	}
	return out
}

// Count returns C(n, r).
func Count(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	c := 1
	for i := 1; i <= r; i++ {
		c = c * (n - r + i) / i
	}
	return c
}
