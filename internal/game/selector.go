package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/gofish/internal/randutil"
)

// Mode selects how the acting player picks a card and a target
type Mode int

const (
	// Random picks a uniform card from the hand and a uniform opponent.
	Random Mode = iota
	// Sequential always asks with the first card and targets the next player.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Sequential:
		return "sequential"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "random" or "sequential"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return Random, nil
	case "sequential":
		return Sequential, nil
	default:
		return Random, fmt.Errorf("unknown mode %q (want random or sequential)", s)
	}
}

// Selector chooses which card the acting player asks with and whom they ask.
type Selector interface {
	SelectTurn(s *GameState, player int) (cardIndex, target int, err error)
}

// RandomSelector draws both choices uniformly from its RNG
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector drawing from rng
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

// SelectTurn picks a uniform card index from the player's hand and a uniform
// target among every other player.
func (r *RandomSelector) SelectTurn(s *GameState, player int) (int, int, error) {
	if err := s.checkPlayer(player); err != nil {
		return 0, 0, err
	}
	if s.PlayerCount() < 2 {
		return 0, 0, ErrTooFewPlayers
	}
	size := s.players[player].HandSize()
	if size == 0 {
		return 0, 0, fmt.Errorf("%w: player %d", ErrEmptyHand, player)
	}

	cardIndex := r.rng.IntN(size)
	target := randutil.IntNExcluding(r.rng, s.PlayerCount(), player)
	return cardIndex, target, nil
}

// SequentialSelector consults no randomness
type SequentialSelector struct{}

// SelectTurn always picks the first card and the next player in seat order.
func (SequentialSelector) SelectTurn(s *GameState, player int) (int, int, error) {
	if err := s.checkPlayer(player); err != nil {
		return 0, 0, err
	}
	if s.players[player].HandSize() == 0 {
		return 0, 0, fmt.Errorf("%w: player %d", ErrEmptyHand, player)
	}
	return 0, s.NextPlayerIndex(player), nil
}
