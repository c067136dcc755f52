// Package display renders games and simulation results to a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/gofish/internal/cards"
	"github.com/lox/gofish/internal/game"
	"github.com/lox/gofish/internal/statistics"
)

// Styles contains styling for game display
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Action    lipgloss.Style
	Miss      lipgloss.Style
	Winner    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Separator lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates the display styles on renderer r
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Action: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Miss: r.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Bold(true),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Display writes styled game output. It implements game.Observer so a game
// can be shown as it is played.
type Display struct {
	out    io.Writer
	styles *Styles
}

var _ game.Observer = (*Display)(nil)

// New creates a display writing to w. With color disabled every style
// renders as plain text.
func New(w io.Writer, color bool) *Display {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Display{out: w, styles: NewStyles(r)}
}

// Card renders a card with its suit symbol, red suits highlighted
func (d *Display) Card(c cards.Card) string {
	if c.IsRed() {
		return d.styles.CardRed.Render(c.Symbol())
	}
	return d.styles.CardBlack.Render(c.Symbol())
}

// Pile renders every card of p separated by spaces
func (d *Display) Pile(p cards.Pile) string {
	if p.IsEmpty() {
		return d.styles.Muted.Render("(empty)")
	}
	parts := make([]string, 0, p.Len())
	for _, c := range p.Cards() {
		parts = append(parts, d.Card(c))
	}
	return strings.Join(parts, " ")
}

// Observe prints one event
func (d *Display) Observe(e game.Event) {
	switch ev := e.(type) {
	case game.DealEvent:
		d.ShowDeal(ev)
	case game.AskEvent:
		if ev.Received {
			fmt.Fprintf(d.out, "%s %s\n",
				d.styles.Action.Render(fmt.Sprintf("Turn %d: player %d asks player %d for a %s", ev.Turn, ev.Player, ev.Target, ev.Rank.Name())),
				d.Card(ev.Card))
			return
		}
		fmt.Fprintln(d.out, d.styles.Miss.Render(fmt.Sprintf("Turn %d: player %d asks player %d for a %s: go fish", ev.Turn, ev.Player, ev.Target, ev.Rank.Name())))
	case game.DrawEvent:
		if !ev.Drawn {
			fmt.Fprintln(d.out, d.styles.Muted.Render(fmt.Sprintf("  player %d finds the deck empty", ev.Player)))
			return
		}
		fmt.Fprintf(d.out, "  player %d draws %s %s\n", ev.Player, d.Card(ev.Card), d.styles.Muted.Render(fmt.Sprintf("(%d left)", ev.Deck)))
	case game.PairsEvent:
		fmt.Fprintf(d.out, "  player %d pairs %s, score %d\n", ev.Player, d.Pile(ev.Pairs), ev.Score)
	case game.GameEndEvent:
		d.ShowResult(ev.Condition, ev.Reason, ev.Turns, ev.Scores)
	}
}

// ShowDeal prints the header and every starting hand
func (d *Display) ShowDeal(ev game.DealEvent) {
	fmt.Fprintln(d.out, d.styles.Header.Render(fmt.Sprintf("Go Fish • %d players • %s", len(ev.Hands), ev.Mode)))
	if ev.GameID != "" {
		fmt.Fprintln(d.out, d.styles.Muted.Render("Game "+ev.GameID))
	}
	for i, h := range ev.Hands {
		score := ""
		if i < len(ev.Scores) && ev.Scores[i] > 0 {
			score = d.styles.Muted.Render(fmt.Sprintf(" (%d pairs)", ev.Scores[i]))
		}
		fmt.Fprintf(d.out, "%s %s%s\n", d.styles.SubHeader.Render(fmt.Sprintf("Player %d:", i)), d.Pile(h), score)
	}
	fmt.Fprintln(d.out, d.styles.Muted.Render(fmt.Sprintf("%d cards in the deck", ev.Deck)))
	d.separator()
}

// ShowResult prints the end of a game
func (d *Display) ShowResult(cond game.EndGameCondition, reason game.EndReason, turns int, scores []int) {
	d.separator()
	switch c := cond.(type) {
	case game.Winner:
		fmt.Fprintln(d.out, d.styles.Winner.Render(fmt.Sprintf("Player %d wins", c.Player)))
	case game.Tie:
		players := make([]string, len(c.Players))
		for i, p := range c.Players {
			players[i] = fmt.Sprintf("%d", p)
		}
		fmt.Fprintln(d.out, d.styles.Winner.Render("Tie between players "+strings.Join(players, ", ")))
	case game.Continue:
		fmt.Fprintln(d.out, d.styles.Muted.Render("Game not finished"))
	}
	fmt.Fprintln(d.out, d.styles.Muted.Render(fmt.Sprintf("%d turns, ended by %s", turns, reason)))
	for i, s := range scores {
		fmt.Fprintf(d.out, "  Player %d: %d pairs\n", i, s)
	}
}

// ShowStatistics prints a simulation summary
func (d *Display) ShowStatistics(stats *statistics.Statistics) {
	fmt.Fprintln(d.out, d.styles.Header.Render(fmt.Sprintf("Simulation • %d games • %d players", stats.Games, stats.Players)))
	fmt.Fprintln(d.out, d.styles.SubHeader.Render("Turns"))
	fmt.Fprintf(d.out, "  mean %.2f ± %.2f, median %.1f\n", stats.MeanTurns(), stats.StdError(), stats.Median())
	fmt.Fprintf(d.out, "  p5 %.1f, p25 %.1f, p75 %.1f, p95 %.1f, min %d, max %d\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95),
		stats.MinTurns, stats.MaxTurns)

	fmt.Fprintln(d.out, d.styles.SubHeader.Render("Results"))
	fmt.Fprintf(d.out, "  %d won outright, %d tied\n", stats.Wins, stats.Ties)
	for i, seat := range stats.Seats {
		fmt.Fprintf(d.out, "  Seat %d: %d wins (%.1f%%), %d ties, %.2f pairs/game\n",
			i, seat.Wins, stats.WinRate(i)*100, seat.Ties, stats.MeanScore(i))
	}
	fmt.Fprintf(d.out, "  First player advantage: %s\n", d.styles.Winner.Render(fmt.Sprintf("%.2f", stats.FirstPlayerAdvantage())))

	fmt.Fprintln(d.out, d.styles.SubHeader.Render("End reasons"))
	for _, reason := range stats.EndReasons() {
		fmt.Fprintf(d.out, "  %s: %d\n", reason, stats.Reasons[reason])
	}
}

func (d *Display) separator() {
	fmt.Fprintln(d.out, d.styles.Separator.Render(strings.Repeat("─", 40)))
}
