package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arcanaland/rummy/internal/card"
)

func cards(ids ...string) []card.Card {
	var out []card.Card
	for _, id := range ids {
		c, err := card.Parse(id)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

func TestOfCountsMatchBinomial(t *testing.T) {
	hand := cards("AS", "2S", "3S", "4S", "5S", "6S", "7S", "8S", "9S", "10S", "JS", "QS", "KS")
	for r := 3; r <= 5; r++ {
		assert.Len(t, Of(hand, r), Count(13, r), "r=%d", r)
	}
	assert.Equal(t, 286+715+1287, len(Sizes(hand, 3, 5)))
}

func TestOfOrder(t *testing.T) {
	got := Of(cards("AS", "2S", "3S"), 2)
	want := [][]card.Card{cards("AS", "2S"), cards("AS", "3S"), cards("2S", "3S")}
	assert.Equal(t, want, got)
}

func TestOfDeduplicatesByIdentity(t *testing.T) {
	hand := cards("AS", "2S", "AS")
	got := Of(hand, 2)
	// {AS,2S} appears once even though AS is listed twice.
	assert.Len(t, got, 2)
	for _, g := range got {
		assert.NotEqual(t, "", Key(g))
	}
}

func TestOfEdges(t *testing.T) {
	assert.Nil(t, Of(cards("AS"), 2))
	assert.Nil(t, Of(cards("AS", "2S"), 0))
	assert.Len(t, Of(cards("AS", "2S"), 2), 1)
}

func TestKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, Key(cards("AS", "KD", "7C")), Key(cards("7C", "AS", "KD")))
}

func TestBuckets(t *testing.T) {
	hand := append(cards("AS", "2S", "2H", "KD"), card.PrintedJoker("JK"))

	bySuit := BySuit(hand)
	assert.Equal(t, cards("AS", "2S"), bySuit[card.Spades])
	assert.Equal(t, cards("2H"), bySuit[card.Hearts])
	assert.Len(t, bySuit, 3)

	byRank := ByRank(hand)
	assert.Equal(t, cards("2S", "2H"), byRank[card.Two])
	assert.Len(t, byRank, 3)
}

func TestUnion(t *testing.T) {
	got := Union(cards("AS", "2S"), cards("2S", "3S"))
	assert.Equal(t, cards("AS", "2S", "3S"), got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1287, Count(13, 5))
	assert.Equal(t, 715, Count(13, 4))
	assert.Equal(t, 286, Count(13, 3))
	assert.Equal(t, 0, Count(3, 4))
	assert.Equal(t, 1, Count(4, 0))
}
