package game

import "errors"

var (
	// ErrTooFewPlayers is returned when a game is created with fewer than two players.
	ErrTooFewPlayers = errors.New("at least two players are required")

	// ErrTooManyPlayers is returned when the deck cannot deal a full hand to every player.
	ErrTooManyPlayers = errors.New("not enough cards to deal every player a full hand")

	// ErrInvalidPlayer is returned for a player index outside the table or a self ask.
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrEmptyHand is returned when a turn is selected for a player with no cards.
	ErrEmptyHand = errors.New("player has no cards")

	// ErrCardIndexOutOfRange is returned when a selector picks a card the hand does not have.
	ErrCardIndexOutOfRange = errors.New("card index out of range")

	// ErrCardNotHeld is returned when a card is removed from a hand that does not hold it.
	ErrCardNotHeld = errors.New("card not held")

	// ErrNotDealt is returned when play starts before the cards are dealt.
	ErrNotDealt = errors.New("cards have not been dealt")

	// ErrAlreadyDealt is returned when Deal is called twice.
	ErrAlreadyDealt = errors.New("cards have already been dealt")

	// ErrConservation is returned when a card is lost or duplicated.
	ErrConservation = errors.New("card conservation violated")
)
