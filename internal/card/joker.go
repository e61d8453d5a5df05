package card

// JokerOptions selects which cards a turned wildcard turns into jokers.
type JokerOptions struct {
	AltColor  bool // Same rank as the wildcard, opposite-colour suits
	OneUp     bool // Rank one above the wildcard, same suit
	WholeRank bool // Every card of the wildcard's rank
}

// DefaultJokerOptions returns the options used when nothing is configured.
func DefaultJokerOptions() JokerOptions {
	return JokerOptions{AltColor: true, WholeRank: true}
}

// JokerConfig describes which cards act as jokers for a deal.
// The zero value has no wildcards; printed jokers are always jokers.
type JokerConfig struct {
	WildcardID string // Identity of the turned wildcard card, if any
	AltColor   map[Key]bool
	OneUp      map[Key]bool
	Ranks      map[Rank]bool
}

// NewJokerConfig derives the joker sets from a turned wildcard card.
// A printed joker turned as wildcard makes every ace a joker.
func NewJokerConfig(wild Card, opts JokerOptions) JokerConfig {
	jc := JokerConfig{
		WildcardID: wild.ID,
		AltColor:   make(map[Key]bool),
		OneUp:      make(map[Key]bool),
		Ranks:      make(map[Rank]bool),
	}

	rank, suit := wild.Rank, wild.Suit
	if wild.Printed {
		jc.Ranks[Ace] = true
		return jc
	}
	if !rank.Valid() || !suit.Valid() {
		return jc
	}

	if opts.AltColor {
		for _, s := range Suits {
			if s.Red() != suit.Red() {
				jc.AltColor[Key{Rank: rank, Suit: s}] = true
			}
		}
	}
	if opts.OneUp {
		k := Key{Rank: rank.Next(), Suit: suit}
		if !jc.AltColor[k] {
			jc.OneUp[k] = true
		}
	}
	if opts.WholeRank {
		jc.Ranks[rank] = true
	}
	return jc
}

// RankJokers returns a config in which every card of rank r is a joker.
func RankJokers(r Rank) JokerConfig {
	return JokerConfig{Ranks: map[Rank]bool{r: true}}
}

// IsJoker reports whether c acts as a joker under this configuration.
func (jc JokerConfig) IsJoker(c Card) bool {
	if c.Printed {
		return true
	}
	if jc.WildcardID != "" && c.ID == jc.WildcardID {
		return true
	}
	if jc.Ranks[c.Rank] && c.Rank.Valid() {
		return true
	}
	k := c.Key()
	return jc.AltColor[k] || jc.OneUp[k]
}

// Split separates cards into non-jokers and jokers, preserving order.
func (jc JokerConfig) Split(cards []Card) (naturals, jokers []Card) {
	for _, c := range cards {
		if jc.IsJoker(c) {
			jokers = append(jokers, c)
		} else {
			naturals = append(naturals, c)
		}
	}
	return naturals, jokers
}
