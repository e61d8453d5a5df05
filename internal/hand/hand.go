package hand

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/rummy/internal/card"
)

// File is the on-disk form of a hand snapshot handed over by a game loop.
type File struct {
	Cards   []string `toml:"cards"`
	Wild    string   `toml:"wild"`
	Top     string   `toml:"top"`
	History []string `toml:"history"`
}

// Hand is a parsed hand snapshot
type Hand struct {
	Path    string
	Cards   []card.Card
	Wild    *card.Card
	Top     *card.Card
	History []string // Identities of the bot's own recent discards, oldest first

	file *File
}

// Load reads and parses a hand file
func Load(path string) (*Hand, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("hand file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	h, err := FromFile(&f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	h.Path = path
	return h, nil
}

// Decode reads a hand snapshot from TOML text
func Decode(data string) (*Hand, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing hand: %w", err)
	}
	return FromFile(&f)
}

// FromFile converts the raw file form into cards
func FromFile(f *File) (*Hand, error) {
	cards, err := Parse(f.Cards)
	if err != nil {
		return nil, err
	}

	h := &Hand{Cards: cards, file: f}

	if f.Wild != "" {
		w, err := card.Parse(f.Wild)
		if err != nil {
			return nil, fmt.Errorf("wild: %w", err)
		}
		h.Wild = &w
	}

	if f.Top != "" {
		top, err := Extra(f.Top, cards)
		if err != nil {
			return nil, fmt.Errorf("top: %w", err)
		}
		h.Top = &top
	}

	for _, tok := range f.History {
		face, _ := SplitSuffix(tok)
		c, err := card.Parse(face)
		if err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		h.History = append(h.History, Identity(tok, c))
	}

	return h, nil
}

// Raw returns the file the hand was parsed from, if any.
func (h *Hand) Raw() *File {
	return h.file
}

// Parse converts card tokens into cards with unique identities. Repeated
// faces (from multiple physical decks) get "#2", "#3", ... suffixes in order
// of appearance. A token may carry its own suffix ("7S#2"), which is kept.
func Parse(tokens []string) ([]card.Card, error) {
	used := make(map[string]bool)
	out := make([]card.Card, 0, len(tokens))
	for _, tok := range tokens {
		face, explicit := SplitSuffix(tok)
		c, err := card.Parse(face)
		if err != nil {
			return nil, err
		}

		if explicit != "" {
			c.ID = c.Code() + "#" + explicit
			if used[c.ID] {
				return nil, fmt.Errorf("duplicate card identity: %s", c.ID)
			}
		} else {
			c.ID = c.Code()
			for n := 2; used[c.ID]; n++ {
				c.ID = fmt.Sprintf("%s#%d", c.Code(), n)
			}
		}
		used[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

// Extra parses a card that sits outside cards, such as the discard pile top.
// A plain face that cards already holds gets the next free "#n" suffix; an
// explicit identity that cards already holds is an error.
func Extra(token string, cards []card.Card) (card.Card, error) {
	face, explicit := SplitSuffix(token)
	c, err := card.Parse(face)
	if err != nil {
		return card.Card{}, err
	}

	used := make(map[string]bool, len(cards))
	for _, h := range cards {
		used[h.ID] = true
	}

	if explicit != "" {
		c.ID = c.Code() + "#" + explicit
		if used[c.ID] {
			return card.Card{}, fmt.Errorf("card %s is already in the hand", c.ID)
		}
		return c, nil
	}
	c.ID = c.Code()
	for n := 2; used[c.ID]; n++ {
		c.ID = fmt.Sprintf("%s#%d", c.Code(), n)
	}
	return c, nil
}

// Fields splits a whitespace or comma separated card list and parses it.
func Fields(s string) ([]card.Card, error) {
	return Parse(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}))
}

// MustFields is like Fields but panics on error. Intended for tests and
// package-level fixtures.
func MustFields(s string) []card.Card {
	cards, err := Fields(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// Identity returns the identity a token refers to, honouring an explicit
// "#n" suffix on the token.
func Identity(token string, c card.Card) string {
	if _, n := SplitSuffix(token); n != "" {
		return c.Code() + "#" + n
	}
	return c.Code()
}

// SplitSuffix separates a token into its card face and "#n" suffix.
func SplitSuffix(tok string) (face, n string) {
	if i := strings.LastIndex(tok, "#"); i > 0 {
		return tok[:i], tok[i+1:]
	}
	return tok, ""
}

// Codes returns the ASCII tokens for cards, keeping identity suffixes.
func Codes(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
