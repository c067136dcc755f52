package cards

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCardNotFound is returned when removing a card the pile does not hold.
var ErrCardNotFound = errors.New("card not found in pile")

// Pile is an ordered multiset of cards. The zero value is an empty pile
// ready to use.
type Pile struct {
	cards []Card
}

// NewPile creates a pile holding the given cards in order
func NewPile(cards ...Card) Pile {
	p := Pile{cards: make([]Card, len(cards))}
	copy(p.cards, cards)
	return p
}

// ParsePile parses a space separated list of card indexes such as
// "2S 2D QS KH".
func ParsePile(s string) (Pile, error) {
	var p Pile
	for _, field := range strings.Fields(s) {
		c, err := ParseCard(field)
		if err != nil {
			return Pile{}, err
		}
		p.Push(c)
	}
	return p, nil
}

// MustParsePile is like ParsePile but panics on error.
func MustParsePile(s string) Pile {
	p, err := ParsePile(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of cards in the pile
func (p Pile) Len() int {
	return len(p.cards)
}

// IsEmpty returns true if the pile holds no cards
func (p Pile) IsEmpty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the cards in pile order
func (p Pile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Ranks returns the rank of every card in pile order
func (p Pile) Ranks() []Rank {
	out := make([]Rank, len(p.cards))
	for i, c := range p.cards {
		out[i] = c.Rank
	}
	return out
}

// At returns the card at index i
func (p Pile) At(i int) (Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return Card{}, false
	}
	return p.cards[i], true
}

// Position returns the index of the card, or -1 if absent
func (p Pile) Position(c Card) int {
	for i, pc := range p.cards {
		if pc == c {
			return i
		}
	}
	return -1
}

// Contains reports whether the pile holds the card
func (p Pile) Contains(c Card) bool {
	return p.Position(c) >= 0
}

// FirstOfRank returns the first card of the given rank in pile order
func (p Pile) FirstOfRank(r Rank) (Card, bool) {
	for _, c := range p.cards {
		if c.Rank == r {
			return c, true
		}
	}
	return Card{}, false
}

// Push appends a card to the end of the pile
func (p *Pile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// Append appends every card of other, in order
func (p *Pile) Append(other Pile) {
	p.cards = append(p.cards, other.cards...)
}

// RemoveCard removes the first occurrence of the card, preserving the order
// of the remaining cards.
func (p *Pile) RemoveCard(c Card) error {
	i := p.Position(c)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c)
	}
	p.cards = append(p.cards[:i], p.cards[i+1:]...)
	return nil
}

// SortByFrequency returns a copy of the pile grouped by rank, most frequent
// rank first. Ranks with equal counts keep the order of their first
// appearance and cards within a rank keep their relative order.
func (p Pile) SortByFrequency() Pile {
	counts := make(map[Rank]int)
	first := make(map[Rank]int)
	for i, c := range p.cards {
		if _, ok := first[c.Rank]; !ok {
			first[c.Rank] = i
		}
		counts[c.Rank]++
	}

	sorted := p.Cards()
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Rank, sorted[j].Rank
		if counts[ri] != counts[rj] {
			return counts[ri] > counts[rj]
		}
		return first[ri] < first[rj]
	})
	return Pile{cards: sorted}
}

// Equal reports whether both piles hold the same cards in the same order
func (p Pile) Equal(other Pile) bool {
	if len(p.cards) != len(other.cards) {
		return false
	}
	for i := range p.cards {
		if p.cards[i] != other.cards[i] {
			return false
		}
	}
	return true
}

// String renders the pile as space separated card indexes, e.g. "AS TD 2C"
func (p Pile) String() string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Symbols renders the pile with suit symbols, e.g. "A♠ T♦ 2♣"
func (p Pile) Symbols() string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		parts[i] = c.Symbol()
	}
	return strings.Join(parts, " ")
}
