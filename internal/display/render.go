// Package display renders hand scores and equity tables for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerodds/analysis"
	"github.com/lox/pokerodds/internal/session"
	"github.com/lox/pokerodds/poker"
)

// Renderer writes styled output to a terminal or plain writer.
type Renderer struct {
	out io.Writer

	header   lipgloss.Style
	hand     lipgloss.Style
	win      lipgloss.Style
	tie      lipgloss.Style
	category lipgloss.Style
	percent  lipgloss.Style
	dim      lipgloss.Style
	red      lipgloss.Style
}

// NewRenderer creates a renderer for out. With color disabled every style
// renders as plain text.
func NewRenderer(out io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:      out,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		win:      r.NewStyle().Foreground(lipgloss.Color("10")),
		tie:      r.NewStyle().Foreground(lipgloss.Color("11")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:      r.NewStyle().Faint(true),
		red:      r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Cards formats cards with suit symbols, red suits highlighted.
func (r *Renderer) Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit.IsRed() {
			parts[i] = r.red.Render(c.Pretty())
		} else {
			parts[i] = c.Pretty()
		}
	}
	return strings.Join(parts, " ")
}

// Score prints an evaluated hand and the five cards that make it.
func (r *Renderer) Score(cards []poker.Card, score poker.HandScore, best [5]poker.Card) {
	fmt.Fprintf(r.out, "%s\n", r.header.Render("cards"))
	fmt.Fprintf(r.out, "%s\n\n", r.Cards(cards))
	fmt.Fprintf(r.out, "%s %s\n", r.category.Render(score.Category.String()), r.dim.Render("("+score.Describe()+")"))
	fmt.Fprintf(r.out, "%s %s\n", r.header.Render("best five"), r.Cards(best[:]))
	fmt.Fprintf(r.out, "%s %s\n", r.header.Render("key"), score.String())
}

// Equity prints an equity table: one row per player.
func (r *Renderer) Equity(hands [][]poker.Card, board []poker.Card, result analysis.EquityResult, elapsed time.Duration) {
	if len(board) > 0 {
		fmt.Fprintf(r.out, "%s\n", r.header.Render("board"))
		fmt.Fprintf(r.out, "%s\n\n", r.Cards(board))
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		r.header.Render("hand"),
		r.header.Render("equity"),
		r.header.Render("win"),
		r.header.Render("tie"))
	for i, hand := range hands {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.hand.Render(poker.FormatCards(hand)),
			r.win.Render(pct(result.Equity(i))),
			r.win.Render(pct(result.WinRate(i))),
			r.tie.Render(pct(result.TieRate(i))))
	}
	w.Flush()

	mode := "exact"
	if !result.Exact {
		mode = "sampled"
	}
	fmt.Fprintf(r.out, "\n%s\n", r.dim.Render(fmt.Sprintf("%d outcomes (%s) in %v", result.Outcomes, mode, elapsed.Truncate(time.Millisecond))))
}

// Categories prints how often each player finishes with each hand category.
func (r *Renderer) Categories(hands [][]poker.Card, result analysis.EquityResult) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", r.category.Render("hand"))
	for _, hand := range hands {
		fmt.Fprintf(w, "\t%s", r.hand.Render(poker.FormatCards(hand)))
	}
	fmt.Fprintf(w, "\n")

	for _, cat := range poker.Categories {
		seen := false
		for i := range hands {
			if result.Players[i].Categories[cat] > 0 {
				seen = true
			}
		}
		if !seen {
			continue
		}

		fmt.Fprintf(w, "%s", r.category.Render(cat.String()))
		for i := range hands {
			if result.Players[i].Categories[cat] > 0 {
				fmt.Fprintf(w, "\t%s", r.percent.Render(pct(result.CategoryRate(i, cat))))
			} else {
				fmt.Fprintf(w, "\t%s", r.percent.Render("."))
			}
		}
		fmt.Fprintf(w, "\n")
	}
	w.Flush()
}

// Session prints a dealt hand street by street, then the showdown.
func (r *Renderer) Session(summary *session.Summary) {
	for i, hand := range summary.Hands {
		fmt.Fprintf(r.out, "%s %s\n", r.header.Render(fmt.Sprintf("player %d", i+1)), r.Cards(hand))
	}
	for _, report := range summary.Reports {
		fmt.Fprintf(r.out, "\n%s\n", r.header.Render(strings.ToUpper(report.Street.String())))
		r.Equity(summary.Hands, report.Board, report.Result, report.Elapsed)
	}

	fmt.Fprintf(r.out, "\n%s\n", r.header.Render("SHOWDOWN"))
	winners := make(map[int]bool, len(summary.Winners))
	for _, w := range summary.Winners {
		winners[w] = true
	}
	for i, score := range summary.Scores {
		line := fmt.Sprintf("player %d  %s", i+1, score.Describe())
		if winners[i] {
			line = r.win.Render(line + "  *")
		}
		fmt.Fprintln(r.out, line)
	}
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
