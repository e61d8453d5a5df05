package bot

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/hand"
	"github.com/arcanaland/rummy/internal/meld"
	"github.com/arcanaland/rummy/internal/solver"
)

const pureAndSets = "AS 2S 3S 4H 4D 4C KS KH KD 7S 7H 7D 7C"

func newAgent(jokers card.JokerConfig, opts ...Option) *Agent {
	return New(solver.New(meld.DefaultRules(), jokers), opts...)
}

func debugLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func top(t *testing.T, token string) *card.Card {
	c, err := card.Parse(token)
	require.NoError(t, err)
	return &c
}

func TestDecideDrawsOnEmptyPile(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))
	assert.Equal(t, Draw, a.Decide(hand.MustFields(pureAndSets), nil))
}

func TestDecideTakesJoker(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))
	h := hand.MustFields("AS 3S 5S 7S 9S JS KS AH 3H 5H 7H 9H JH")
	assert.Equal(t, TakeDiscard, a.Decide(h, top(t, "JK")))
	assert.Equal(t, TakeDiscard, a.Decide(h, top(t, "2D")))
}

func TestDecideTakesCardThatCompletesHand(t *testing.T) {
	logger, hook := debugLogger()
	a := newAgent(card.RankJokers(card.Two), WithLogger(logger))

	h := hand.MustFields("AS 2S 3S 4H 4D 4C KS KH KD 7S 7H 7D QC")
	assert.Equal(t, TakeDiscard, a.Decide(h, top(t, "7C")))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "completes hand", hook.LastEntry().Data["reason"])
}

func TestDecideHeuristics(t *testing.T) {
	tests := []struct {
		name   string
		hand   string
		top    string
		want   Action
		reason string
	}{
		{
			name:   "set potential",
			hand:   "AS 3S 5S 7S 9S JS KS AH 3H 5H QH QC 9D",
			top:    "QD",
			want:   TakeDiscard,
			reason: "set potential",
		},
		{
			name:   "sequence potential",
			hand:   "3H 5H 9H QH AS 7S 10S KC 8C 6D JD 4C 9C",
			top:    "4H",
			want:   TakeDiscard,
			reason: "sequence potential",
		},
		{
			name:   "no use",
			hand:   "AS 3S 5S 7S 9S JS KS AH 3H 5H 7H 9H JH",
			top:    "QD",
			want:   Draw,
			reason: "no use for discard",
		},
		{
			name:   "same suit too thin",
			hand:   "AS 3S 5S 7S 9S JS KS AH 3H 5H 7H 9H 8D",
			top:    "10D",
			want:   Draw,
			reason: "no use for discard",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := debugLogger()
			a := newAgent(card.JokerConfig{}, WithLogger(logger))
			assert.Equal(t, tt.want, a.Decide(hand.MustFields(tt.hand), top(t, tt.top)))
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.reason, hook.LastEntry().Data["reason"])
		})
	}
}

func TestOwnRecentDiscardIsNotTakenBack(t *testing.T) {
	jokers := card.RankJokers(card.Two)
	before := hand.MustFields("3H 4H 5H 6H 9S 9D 9C JS JD QD 7C 7D KC")
	after := hand.MustFields("KS KH 3H 4H 5H 6H 9S 9D 9C JS JD QD 7D")

	a := newAgent(jokers)
	thrown, ok := a.SelectDiscard(before)
	require.True(t, ok)
	require.Equal(t, "KC", thrown.ID)

	assert.Equal(t, Draw, a.Decide(after, &thrown))
	assert.Equal(t, TakeDiscard, newAgent(jokers).Decide(after, &thrown))
}

func TestSelectDiscardPrefersWinningDiscard(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))
	got, ok := a.SelectDiscard(hand.MustFields(pureAndSets + " 9D"))
	require.True(t, ok)
	assert.Equal(t, "9D", got.ID)
	assert.Equal(t, []string{"9D"}, a.RecentDiscards())
}

func TestSelectDiscardKeepsJokers(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))

	got, ok := a.SelectDiscard(hand.MustFields("JK 2S 2H JK KD"))
	require.True(t, ok)
	assert.Equal(t, "KD", got.ID)

	got, ok = a.SelectDiscard(hand.MustFields("JK 2S 2H"))
	require.True(t, ok)
	assert.Equal(t, "JK", got.ID)

	_, ok = a.SelectDiscard(nil)
	assert.False(t, ok)
}

func TestSelectDiscardNeverPicksJokerWithNaturalsPresent(t *testing.T) {
	hands := []string{
		"JK 2C 2D 3S 4S 5S 6S 7S 8S 9S 10S JS QS",
		"KS KH KD KC JK 2H AS AH AD AC QS QH QD",
		"2S 2H 2D 2C JK JK JK 9D",
	}
	for _, h := range hands {
		a := newAgent(card.RankJokers(card.Two))
		got, ok := a.SelectDiscard(hand.MustFields(h))
		require.True(t, ok)
		assert.False(t, card.RankJokers(card.Two).IsJoker(got), h)
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	a := newAgent(card.JokerConfig{}, WithHistory("AS", "2S", "3S"))
	_, ok := a.SelectDiscard(hand.MustFields("KD"))
	require.True(t, ok)
	assert.Equal(t, []string{"2S", "3S", "KD"}, a.RecentDiscards())

	assert.Equal(t, TakeDiscard, a.Decide(nil, top(t, "JK")))
	assert.Equal(t, Draw, a.Decide(nil, top(t, "KD")))
}

func TestCanDeclare(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))
	assert.True(t, a.CanDeclare(hand.MustFields(pureAndSets+" 9D")))
	assert.False(t, a.CanDeclare(hand.MustFields("4H 4D 4C KS KH KD 7S 7H 7D 7C 9S 9H 9D 9C")))
	assert.False(t, a.CanDeclare(hand.MustFields(pureAndSets)))
	assert.Empty(t, a.RecentDiscards())
}

func TestEvaluateCardPotential(t *testing.T) {
	a := newAgent(card.RankJokers(card.Two))
	w := DefaultWeights()
	h := hand.MustFields("5H 6H 9C KD 2S JK")

	assert.Equal(t, w.Joker, a.EvaluateCardPotential(h[4], h))
	assert.Equal(t, w.Joker, a.EvaluateCardPotential(h[5], h))

	// 5H: one neighbour, middle rank.
	assert.Equal(t, w.Adjacent+w.MiddleRank, a.EvaluateCardPotential(h[0], h))
	// 9C: isolated, middle rank.
	assert.Equal(t, w.Isolated+w.MiddleRank, a.EvaluateCardPotential(h[2], h))
	// KD: isolated edge rank.
	assert.Equal(t, w.Isolated, a.EvaluateCardPotential(h[3], h))

	set := hand.MustFields("QS QH QD QC")
	assert.Equal(t, w.RankTriple+w.InnerRank, a.EvaluateCardPotential(set[0], set))

	suited := hand.MustFields("AC 4C 7C 10C KC 8C")
	// 4C: five clubs, none within two ranks.
	assert.Equal(t, w.SuitGroup+w.MiddleRank, a.EvaluateCardPotential(suited[1], suited[:5]))
	// 10C with 8C: near neighbour, five other clubs.
	assert.Equal(t, w.NearAdjacent+w.SuitDense+w.MiddleRank, a.EvaluateCardPotential(suited[3], suited))
}

func TestCustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.TakeSameRank = 1
	a := newAgent(card.JokerConfig{}, WithWeights(w))
	h := hand.MustFields("AS 3S 5S 7S 9S JS KS AH 3H 5H 7H 9H QC")
	assert.Equal(t, TakeDiscard, a.Decide(h, top(t, "QD")))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 1, distance(card.Ace, card.King))
	assert.Equal(t, 1, distance(card.Ace, card.Two))
	assert.Equal(t, 2, distance(card.Ace, card.Three))
	assert.Equal(t, 2, distance(card.Queen, card.Ace))
	assert.Equal(t, 5, distance(card.Four, card.Nine))
}
