package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/hand"
	"github.com/arcanaland/rummy/internal/meld"
)

func plain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestCard(t *testing.T) {
	plain(t)
	jokers := card.RankJokers(card.Two)

	assert.Equal(t, "A♠", Card(card.New(card.Ace, card.Spades), jokers))
	assert.Equal(t, "2♥*", Card(card.New(card.Two, card.Hearts), jokers))
	assert.Equal(t, "JK", Card(card.PrintedJoker("JK"), jokers))
	assert.Equal(t, "??", Card(card.Card{ID: "x"}, jokers))
	assert.Equal(t, "A♠ 2♥*", Cards(hand.MustFields("AS 2H"), jokers))
}

func TestCardColours(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	s := Card(card.New(card.Queen, card.Diamonds), card.JokerConfig{})
	assert.Contains(t, s, "\x1b[")
	assert.Equal(t, "Q♦", stripAnsi(s))
}

func TestHandWraps(t *testing.T) {
	plain(t)
	cards := hand.MustFields("AS 2S 3S 4H 4D 4C KS KH KD 7S 7H 7D 7C")

	lines := Hand(cards, card.JokerConfig{}, 80)
	require.Len(t, lines, 1)
	assert.Equal(t, "A♠ 2♠ 3♠ 4♥ 4♦ 4♣ K♠ K♥ K♦ 7♠ 7♥ 7♦ 7♣", lines[0])

	lines = Hand(cards, card.JokerConfig{}, 12)
	require.Len(t, lines, 4)
	assert.Equal(t, "A♠ 2♠ 3♠ 4♥", lines[0])
	assert.Equal(t, "7♣", lines[3])

	assert.Equal(t, []string{""}, Hand(nil, card.JokerConfig{}, 80))
}

func TestWrapMeasuresVisibleWidth(t *testing.T) {
	words := []string{"\x1b[31mAB\x1b[0m", "\x1b[31mCD\x1b[0m", "EF", "GH"}
	lines := wrap(words, 11)
	require.Len(t, lines, 1)
	assert.Equal(t, "AB CD EF GH", stripAnsi(lines[0]))
}

func TestMeldsTable(t *testing.T) {
	plain(t)
	melds := []meld.Meld{
		{Type: meld.PureRun, Cards: hand.MustFields("AS 2S 3S")},
		{Type: meld.Set, Cards: hand.MustFields("4H 4D 4C")},
	}

	var buf bytes.Buffer
	Melds(&buf, melds, card.JokerConfig{})
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "pure run")
	assert.Contains(t, out, "A♠ 2♠ 3♠")
	assert.Contains(t, out, "set")
	assert.Contains(t, out, "6 cards")
}

func TestScoresTable(t *testing.T) {
	plain(t)
	cards := hand.MustFields("KD 9C")

	var buf bytes.Buffer
	Scores(&buf, []Score{{cards[0], -20}, {cards[1], -14}}, "KD", card.JokerConfig{})
	out := buf.String()
	assert.Contains(t, out, "K♦")
	assert.Contains(t, out, "-20")
	assert.Contains(t, out, "discard")
}

func TestVerdict(t *testing.T) {
	plain(t)
	assert.Equal(t, "yes", Verdict(true, "yes", "no"))
	assert.Equal(t, "no", Verdict(false, "yes", "no"))
	assert.Equal(t, "Wild: 2♠", Label("Wild", "2♠"))
}
