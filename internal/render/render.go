// Package render draws cards, melds and bot scores for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/arcanaland/rummy/internal/card"
	"github.com/arcanaland/rummy/internal/meld"
)

var (
	red    = color.New(color.FgHiRed, color.Bold)
	black  = color.New(color.FgHiWhite, color.Bold)
	joker  = color.New(color.FgHiMagenta, color.Bold)
	label  = color.New(color.FgCyan)
	good   = color.New(color.FgHiGreen)
	bad    = color.New(color.FgHiRed)
	dimmed = color.New(color.Faint)
)

// Card returns c with its suit colour. Cards that act as jokers under
// jokers are marked with a trailing star.
func Card(c card.Card, jokers card.JokerConfig) string {
	switch {
	case c.Printed:
		return joker.Sprint(c.String())
	case c.Malformed():
		return dimmed.Sprint("??")
	}

	s := c.String()
	if jokers.IsJoker(c) {
		return joker.Sprint(s + "*")
	}
	if c.Suit.Red() {
		return red.Sprint(s)
	}
	return black.Sprint(s)
}

// Cards joins the coloured cards with single spaces.
func Cards(cards []card.Card, jokers card.JokerConfig) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c, jokers)
	}
	return strings.Join(parts, " ")
}

// Label formats a "name: value" line.
func Label(name, value string) string {
	return label.Sprint(name+": ") + value
}

// Verdict colours a yes/no outcome.
func Verdict(ok bool, yes, no string) string {
	if ok {
		return good.Sprint(yes)
	}
	return bad.Sprint(no)
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Hand lays the cards out over as many lines as width needs.
func Hand(cards []card.Card, jokers card.JokerConfig, width int) []string {
	words := make([]string, len(cards))
	for i, c := range cards {
		words[i] = Card(c, jokers)
	}
	return wrap(words, width)
}

// wrap packs words into lines no wider than width, measuring visible text
// only.
func wrap(words []string, width int) []string {
	if width < 10 {
		width = 40
	}
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current, visible := "", 0
	for _, w := range words {
		n := len([]rune(stripAnsi(w)))
		switch {
		case visible == 0:
			current, visible = w, n
		case visible+1+n <= width:
			current += " " + w
			visible += 1 + n
		default:
			lines = append(lines, current)
			current, visible = w, n
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Melds writes an arrangement as a table, one meld per row.
func Melds(w io.Writer, melds []meld.Meld, jokers card.JokerConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Meld", "Cards"})
	for i, m := range melds {
		t.AppendRow(table.Row{i + 1, m.Type.String(), Cards(m.Cards, jokers)})
	}
	t.AppendFooter(table.Row{"", "total", fmt.Sprintf("%d cards", countCards(melds))})
	t.Render()
}

func countCards(melds []meld.Meld) int {
	n := 0
	for _, m := range melds {
		n += len(m.Cards)
	}
	return n
}

// Score is one row of a card potential table.
type Score struct {
	Card  card.Card
	Value int
}

// Scores writes card potentials as a table, marking the chosen card.
func Scores(w io.Writer, scores []Score, chosen string, jokers card.JokerConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Card", "Potential", ""})
	for _, s := range scores {
		mark := ""
		if s.Card.ID == chosen {
			mark = "discard"
		}
		t.AppendRow(table.Row{Card(s.Card, jokers), s.Value, mark})
	}
	t.Render()
}
