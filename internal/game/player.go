package game

import "github.com/lox/gofish/internal/cards"

// Player holds one seat's hand, matched pairs and score. The zero value is
// a player with no cards.
type Player struct {
	Hand  cards.Pile
	Pairs cards.Pile
	Score int // one point per matched pair
}

// NewPlayer creates a player with an empty hand
func NewPlayer() *Player {
	return &Player{}
}

// AddCard appends a card to the hand
func (p *Player) AddCard(c cards.Card) {
	p.Hand.Push(c)
}

// AddCards appends every card of the pile to the hand
func (p *Player) AddCards(pile cards.Pile) {
	p.Hand.Append(pile)
}

// AnswerForRank returns the first card in the hand with the given rank.
func (p *Player) AnswerForRank(r cards.Rank) (cards.Card, bool) {
	return p.Hand.FirstOfRank(r)
}

// HandSize returns the number of cards held
func (p *Player) HandSize() int {
	return p.Hand.Len()
}
