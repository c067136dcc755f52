package game

import (
	"fmt"

	"github.com/lox/gofish/internal/cards"
)

// AskResult is the outcome of asking another player for a rank. It is
// either ReceivedCard or GoFish.
type AskResult interface {
	askResult()
}

// ReceivedCard means the target handed over Card
type ReceivedCard struct {
	Card cards.Card
}

// GoFish means the target held no card of the asked rank
type GoFish struct{}

func (ReceivedCard) askResult() {}
func (GoFish) askResult()       {}

// AskForCard asks target for a card with the same rank as card. When the
// target holds one, that exact card leaves the target's hand and joins the
// asker's hand in the same step. Otherwise nothing changes and GoFish is
// returned. The deck is never touched.
func (s *GameState) AskForCard(asker, target int, card cards.Card) (AskResult, error) {
	if err := s.checkPlayer(asker); err != nil {
		return nil, err
	}
	if err := s.checkPlayer(target); err != nil {
		return nil, err
	}
	if asker == target {
		return nil, fmt.Errorf("%w: player %d cannot ask themselves", ErrInvalidPlayer, asker)
	}

	answer, ok := s.players[target].AnswerForRank(card.Rank)
	if !ok {
		return GoFish{}, nil
	}

	if err := s.transferCard(target, asker, answer); err != nil {
		return nil, err
	}
	return ReceivedCard{Card: answer}, nil
}

func (s *GameState) transferCard(from, to int, c cards.Card) error {
	if err := s.players[from].Hand.RemoveCard(c); err != nil {
		return fmt.Errorf("%w: player %d: %v", ErrCardNotHeld, from, err)
	}
	s.players[to].AddCard(c)
	return nil
}
