package card

import (
	"fmt"
	"strings"
)

// Rank is a card rank. The zero value is not a valid rank.
type Rank int

const (
	NoRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists the thirteen canonical ranks, ace low.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Valid reports whether r is one of the thirteen canonical ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Index returns the ace-low position of the rank (Ace = 0, King = 12), or -1.
func (r Rank) Index() int {
	if !r.Valid() {
		return -1
	}
	return int(r) - 1
}

// HighIndex is like Index but numbers the ace above the king (13).
func (r Rank) HighIndex() int {
	if r == Ace {
		return 13
	}
	return r.Index()
}

// Next returns the rank one above r, wrapping King to Ace.
func (r Rank) Next() Rank {
	if !r.Valid() {
		return NoRank
	}
	if r == King {
		return Ace
	}
	return r + 1
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Suit is a card suit. The zero value is not a valid suit.
type Suit int

const (
	NoSuit Suit = iota
	Spades
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four suits in display order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Red reports whether the suit is hearts or diamonds.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Symbol returns the unicode pip for the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "•"
	}
}

// Letter returns the single-letter code for the suit (S, H, D, C).
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "none"
	}
}

// Key identifies a card face by rank and suit, ignoring identity.
type Key struct {
	Rank Rank
	Suit Suit
}

// Card is an immutable playing card.
type Card struct {
	ID      string // Stable identity, unique within a hand (e.g. "7S", "7S#2", "JK")
	Rank    Rank
	Suit    Suit
	Printed bool // Printed joker; has no rank or suit
}

// New returns a card with the canonical identity for its face.
func New(r Rank, s Suit) Card {
	return Card{ID: r.String() + s.Letter(), Rank: r, Suit: s}
}

// PrintedJoker returns a printed joker with the given identity.
func PrintedJoker(id string) Card {
	return Card{ID: id, Printed: true}
}

// Key returns the rank/suit face of the card
func (c Card) Key() Key {
	return Key{Rank: c.Rank, Suit: c.Suit}
}

// Malformed reports whether a non-printed card lacks a valid rank or suit.
func (c Card) Malformed() bool {
	return !c.Printed && (!c.Rank.Valid() || !c.Suit.Valid())
}

func (c Card) String() string {
	if c.Printed {
		return "JK"
	}
	return c.Rank.String() + c.Suit.Symbol()
}

// Code returns the ASCII token for the card face (e.g. "10H", "AS", "JK").
func (c Card) Code() string {
	if c.Printed {
		return "JK"
	}
	return c.Rank.String() + c.Suit.Letter()
}

var rankNames = map[string]Rank{
	"a": Ace, "1": Ace, "ace": Ace,
	"2": Two, "two": Two,
	"3": Three, "three": Three,
	"4": Four, "four": Four,
	"5": Five, "five": Five,
	"6": Six, "six": Six,
	"7": Seven, "seven": Seven,
	"8": Eight, "eight": Eight,
	"9": Nine, "nine": Nine,
	"10": Ten, "t": Ten, "ten": Ten,
	"j": Jack, "jack": Jack,
	"q": Queen, "queen": Queen,
	"k": King, "king": King,
}

var suitNames = map[string]Suit{
	"s": Spades, "spade": Spades, "spades": Spades, "♠": Spades, "♤": Spades,
	"h": Hearts, "heart": Hearts, "hearts": Hearts, "♥": Hearts, "♡": Hearts,
	"d": Diamonds, "diamond": Diamonds, "diamonds": Diamonds, "♦": Diamonds, "♢": Diamonds,
	"c": Clubs, "club": Clubs, "clubs": Clubs, "♣": Clubs, "♧": Clubs,
}

// ParseRank normalizes short and long rank names ("A", "ace", "10", "ten", "J", "jack", ...).
func ParseRank(s string) (Rank, error) {
	if r, ok := rankNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return NoRank, fmt.Errorf("unknown rank: %q", s)
}

// ParseSuit normalizes suit letters, names and symbols.
func ParseSuit(s string) (Suit, error) {
	if su, ok := suitNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return su, nil
	}
	return NoSuit, fmt.Errorf("unknown suit: %q", s)
}

// Parse reads a single card token. Accepted forms are "AS", "10h", "q♦",
// "ace-spades", "ten of hearts" and "JK"/"joker" for a printed joker.
// The identity of the returned card is its canonical code.
func Parse(token string) (Card, error) {
	t := strings.TrimSpace(token)
	switch strings.ToLower(t) {
	case "":
		return Card{}, fmt.Errorf("empty card token")
	case "jk", "joker", "*":
		return PrintedJoker("JK"), nil
	}

	lower := strings.ToLower(t)
	for _, sep := range []string{" of ", "-", "_", " "} {
		if i := strings.Index(lower, sep); i > 0 {
			return parseParts(t, lower[:i], lower[i+len(sep):])
		}
	}

	// Compact form: suit is the trailing rune.
	runes := []rune(t)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card token: %q", token)
	}
	return parseParts(t, string(runes[:len(runes)-1]), string(runes[len(runes)-1:]))
}

func parseParts(token, rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card token %q: %w", token, err)
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card token %q: %w", token, err)
	}
	return New(r, s), nil
}
