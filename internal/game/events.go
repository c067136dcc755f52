package game

import "github.com/lox/gofish/internal/cards"

// EventType identifies a game event
type EventType string

const (
	EventTypeDeal    EventType = "deal"
	EventTypeAsk     EventType = "ask"
	EventTypeDraw    EventType = "draw"
	EventTypePairs   EventType = "pairs"
	EventTypeGameEnd EventType = "game_end"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything that happens during a game
type Event interface {
	EventType() EventType
}

// Observer receives every event of a game in order. Observers run on the
// game's goroutine and must not call back into the GameState.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Event)

// Observe calls f(e)
func (f ObserverFunc) Observe(e Event) { f(e) }

// DealEvent is published once the hands are dealt and the first pairs matched
type DealEvent struct {
	GameID string
	Mode   Mode
	Hands  []cards.Pile
	Scores []int
	Deck   int // cards left in the deck
}

// AskEvent is published for every ask
type AskEvent struct {
	Turn     int
	Player   int
	Target   int
	Rank     cards.Rank
	Received bool
	Card     cards.Card // only set when Received
}

// DrawEvent is published when an ask misses. Drawn is false when the deck
// was already empty.
type DrawEvent struct {
	Turn   int
	Player int
	Drawn  bool
	Card   cards.Card
	Deck   int
}

// PairsEvent is published when a player matches one or more pairs
type PairsEvent struct {
	Turn   int
	Player int
	Count  int
	Score  int
	Pairs  cards.Pile // the cards just matched
}

// GameEndEvent is published when the game loop stops
type GameEndEvent struct {
	GameID    string
	Turns     int
	Condition EndGameCondition
	Reason    EndReason
	Scores    []int
}

func (DealEvent) EventType() EventType    { return EventTypeDeal }
func (AskEvent) EventType() EventType     { return EventTypeAsk }
func (DrawEvent) EventType() EventType    { return EventTypeDraw }
func (PairsEvent) EventType() EventType   { return EventTypePairs }
func (GameEndEvent) EventType() EventType { return EventTypeGameEnd }

func (s *GameState) publish(e Event) {
	if s.observer != nil {
		s.observer.Observe(e)
	}
}
