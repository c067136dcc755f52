package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/gofish/internal/cards"
)

// newFixedGame deals a Sequential game from the unshuffled standard deck.
func newFixedGame(t *testing.T, players int, opts ...Option) *GameState {
	t.Helper()
	g, err := NewWithDeck(players, cards.NewStandardDeck(), Sequential, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Deal())
	return g
}

// setHand replaces a player's hand, bypassing the deck. Conservation checks
// are meaningless on a game whose hands were set this way.
func setHand(t *testing.T, g *GameState, player int, hand string) {
	t.Helper()
	p := g.Player(player)
	require.NotNil(t, p)
	p.Hand = cards.MustParsePile(hand)
}

// recorder collects every event a game publishes.
type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(et EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}
