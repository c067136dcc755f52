package cards

import rand "math/rand/v2"

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// Deck holds the undealt cards. Cards are only ever taken from the front.
type Deck struct {
	pile Pile
}

// StandardCards returns the 52 cards in standard order: spades, hearts,
// diamonds, clubs, each from Ace down to Two.
func StandardCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewStandardDeck creates an unshuffled deck in standard order
func NewStandardDeck() *Deck {
	return &Deck{pile: NewPile(StandardCards()...)}
}

// NewShuffledDeck creates a standard deck shuffled with rng
func NewShuffledDeck(rng *rand.Rand) *Deck {
	cards := StandardCards()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{pile: Pile{cards: cards}}
}

// NewDeckFromPile creates a deck that deals the pile's cards in order
func NewDeckFromPile(p Pile) *Deck {
	return &Deck{pile: NewPile(p.cards...)}
}

// Draw removes up to n cards from the front of the deck. It returns false
// when the deck is already empty.
func (d *Deck) Draw(n int) (Pile, bool) {
	if len(d.pile.cards) == 0 || n <= 0 {
		return Pile{}, false
	}
	if n > len(d.pile.cards) {
		n = len(d.pile.cards)
	}

	drawn := NewPile(d.pile.cards[:n]...)
	d.pile.cards = d.pile.cards[n:]
	return drawn, true
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return d.pile.Len()
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return d.pile.IsEmpty()
}

// Cards returns a copy of the remaining cards in deal order
func (d *Deck) Cards() []Card {
	return d.pile.Cards()
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	return d.pile.At(0)
}
