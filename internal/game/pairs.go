package game

import "github.com/lox/gofish/internal/cards"

// FindPair scans the pile in order and returns the first two cards of the
// first rank seen twice. Only two cards are returned even when three or four
// share the rank.
func FindPair(p cards.Pile) (cards.Card, cards.Card, bool) {
	seen := make(map[cards.Rank]cards.Card)
	for _, c := range p.Cards() {
		if first, ok := seen[c.Rank]; ok {
			return first, c, true
		}
		seen[c.Rank] = c
	}
	return cards.Card{}, cards.Card{}, false
}

// MatchPairs moves every complete pair out of the hand into the pairs pile,
// scoring one point per pair, and returns how many pairs were found. The
// hand is first grouped by rank frequency. A hand without pairs is left
// untouched.
func (p *Player) MatchPairs() int {
	p.Hand = p.Hand.SortByFrequency()

	found := 0
	for {
		first, second, ok := FindPair(p.Hand)
		if !ok {
			return found
		}
		mustRemove(&p.Hand, first)
		mustRemove(&p.Hand, second)
		p.Pairs.Push(first)
		p.Pairs.Push(second)
		p.Score++
		found++
	}
}

// mustRemove removes a card FindPair just located in the same pile, so a
// failure means the pile changed underneath us.
func mustRemove(p *cards.Pile, c cards.Card) {
	if err := p.RemoveCard(c); err != nil {
		panic("game: matched card vanished from hand: " + err.Error())
	}
}
