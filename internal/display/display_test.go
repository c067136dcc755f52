package display

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gofish/internal/cards"
	"github.com/lox/gofish/internal/game"
	"github.com/lox/gofish/internal/statistics"
)

func TestCardAndPilePlain(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, false)

	assert.Equal(t, "A♠", d.Card(cards.MustParseCard("AS")))
	assert.Equal(t, "7♥", d.Card(cards.MustParseCard("7H")))
	assert.Equal(t, "A♠ T♦ 2♣", d.Pile(cards.MustParsePile("AS TD 2C")))
	assert.Equal(t, "(empty)", d.Pile(cards.Pile{}))
}

func TestObserveFixedGame(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, false)

	g, err := game.NewWithDeck(4, cards.NewStandardDeck(), game.Sequential,
		game.WithID("fixed"),
		game.WithObserver(d))
	require.NoError(t, err)
	require.NoError(t, g.Deal())
	_, err = g.RunGame(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Go Fish • 4 players • sequential")
	assert.Contains(t, out, "Game fixed")
	assert.Contains(t, out, "Player 0: A♠ T♠ 6♠ 2♠ J♥ 7♥ 3♥")
	assert.Contains(t, out, "24 cards in the deck")
	assert.Contains(t, out, "go fish")
	assert.Contains(t, out, "Player 0 wins")
	assert.Contains(t, out, "8 turns, ended by empty_hand")
	assert.Contains(t, out, "Player 1: 3 pairs")
	assert.NotContains(t, out, "\x1b[", "plain output has no escape codes")
}

func TestShowResultTie(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, false)

	d.ShowResult(game.Tie{Players: []int{0, 2}}, game.EndReasonStalemate, 12, []int{2, 1, 2})

	out := buf.String()
	assert.Contains(t, out, "Tie between players 0, 2")
	assert.Contains(t, out, "12 turns, ended by stalemate")
	assert.Contains(t, out, "Player 2: 2 pairs")
}

func TestShowStatistics(t *testing.T) {
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{Players: 2, Turns: 10, Condition: game.Winner{Player: 0}, Reason: game.EndReasonEmptyHand, Scores: []int{5, 2}})
	stats.Add(statistics.GameResult{Players: 2, Turns: 20, Condition: game.Tie{Players: []int{0, 1}}, Reason: game.EndReasonStalemate, Scores: []int{3, 3}})

	var buf bytes.Buffer
	New(&buf, false).ShowStatistics(stats)

	out := buf.String()
	assert.Contains(t, out, "Simulation • 2 games • 2 players")
	assert.Contains(t, out, "1 won outright, 1 tied")
	assert.Contains(t, out, "Seat 0: 1 wins (50.0%), 1 ties, 4.00 pairs/game")
	assert.Contains(t, out, "empty_hand: 1")
	assert.Contains(t, out, "stalemate: 1")

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 8)
}
