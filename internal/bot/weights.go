package bot

// Weights is the scoring table the agent uses to rank cards and to decide
// whether the discard-pile top is worth taking.
//
//	field               default  applies when
//	Joker                  1000  card is a joker (never chosen while a non-joker remains)
//	RankTriple               40  3+ other cards share the rank
//	RankPair                 30  exactly 2 other cards share the rank
//	RankSingle               15  exactly 1 other card shares the rank
//	SuitDense                15  5+ other cards share the suit
//	SuitGroup                10  3-4 other cards share the suit
//	SuitPair                  5  exactly 2 other cards share the suit
//	Adjacent                 25  per same-suit card one rank away
//	NearAdjacent             12  per same-suit card two ranks away
//	Isolated                -20  no rank partner, under two suit partners, no neighbour
//	MiddleRank                6  rank 4 through 10
//	InnerRank                 3  rank 2, 3, J or Q
//	TakeSameRank              2  take the discard with this many same-rank cards in hand
//	TakeSuitWithSequence      3  take with this many same-suit cards and a neighbour
//	TakeSuitDense             5  take with this many same-suit cards and a neighbour
type Weights struct {
	Joker int `toml:"joker"`

	RankTriple int `toml:"rank_triple"`
	RankPair   int `toml:"rank_pair"`
	RankSingle int `toml:"rank_single"`

	SuitDense int `toml:"suit_dense"`
	SuitGroup int `toml:"suit_group"`
	SuitPair  int `toml:"suit_pair"`

	Adjacent     int `toml:"adjacent"`
	NearAdjacent int `toml:"near_adjacent"`
	Isolated     int `toml:"isolated"`

	MiddleRank int `toml:"middle_rank"`
	InnerRank  int `toml:"inner_rank"`

	TakeSameRank         int `toml:"take_same_rank"`
	TakeSuitWithSequence int `toml:"take_suit_with_sequence"`
	TakeSuitDense        int `toml:"take_suit_dense"`
}

// DefaultWeights returns the built-in scoring table.
func DefaultWeights() Weights {
	return Weights{
		Joker: 1000,

		RankTriple: 40,
		RankPair:   30,
		RankSingle: 15,

		SuitDense: 15,
		SuitGroup: 10,
		SuitPair:  5,

		Adjacent:     25,
		NearAdjacent: 12,
		Isolated:     -20,

		MiddleRank: 6,
		InnerRank:  3,

		TakeSameRank:         2,
		TakeSuitWithSequence: 3,
		TakeSuitDense:        5,
	}
}
