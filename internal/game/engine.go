package game

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/gofish/internal/cards"
	"github.com/lox/gofish/internal/gameid"
	"github.com/lox/gofish/internal/randutil"
)

const (
	// HandSize is the number of cards dealt to each player
	HandSize = 7

	// DefaultMaxTurns caps the number of asks in one game
	DefaultMaxTurns = 10000
)

// TurnResult tells the game loop who acts next
type TurnResult int

const (
	// NextPlayerTurn passes the turn on
	NextPlayerTurn TurnResult = iota
	// PlayAgain keeps the same player acting
	PlayAgain
)

func (r TurnResult) String() string {
	switch r {
	case NextPlayerTurn:
		return "next_player_turn"
	case PlayAgain:
		return "play_again"
	default:
		return fmt.Sprintf("turn_result(%d)", int(r))
	}
}

// Option configures a GameState during creation.
type Option func(*gameConfig)

type gameConfig struct {
	id                string
	rng               *rand.Rand
	selector          Selector
	logger            *log.Logger
	observer          Observer
	maxTurns          int
	stallWindow       int
	checkConservation bool
}

// WithID sets the game ID. A fresh ID is generated otherwise.
func WithID(id string) Option {
	return func(c *gameConfig) { c.id = id }
}

// WithRand sets the RNG used to shuffle the deck in New and by the Random
// selector.
func WithRand(rng *rand.Rand) Option {
	return func(c *gameConfig) { c.rng = rng }
}

// WithSelector replaces the mode's default selector
func WithSelector(sel Selector) Option {
	return func(c *gameConfig) { c.selector = sel }
}

// WithLogger sets the logger. Games are silent by default.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) { c.logger = logger }
}

// WithObserver receives every game event
func WithObserver(o Observer) Option {
	return func(c *gameConfig) { c.observer = o }
}

// WithMaxTurns caps the total number of asks. Zero or less uses DefaultMaxTurns.
func WithMaxTurns(n int) Option {
	return func(c *gameConfig) { c.maxTurns = n }
}

// WithStallWindow sets how many consecutive asks that neither receive nor
// draw a card end a game played by SequentialSelector once the deck is
// empty. Zero or less uses the player count. Other selectors ignore it.
func WithStallWindow(n int) Option {
	return func(c *gameConfig) { c.stallWindow = n }
}

// WithConservationCheck validates the card set after every ask
func WithConservationCheck(enabled bool) Option {
	return func(c *gameConfig) { c.checkConservation = enabled }
}

// GameState owns the deck and every player for a single game. It is not
// safe for concurrent use.
type GameState struct {
	id          string
	deck        *cards.Deck
	players     []*Player
	playerCount int
	mode        Mode
	selector    Selector
	logger      *log.Logger
	observer    Observer

	maxTurns          int
	sequential        bool
	stallWindow       int
	checkConservation bool
	initial           map[cards.Card]int

	dealt     bool
	turns     int
	idle      int // consecutive asks with no card moved, counted once the deck is empty
	endReason EndReason
}

// New creates a Random mode game on a freshly shuffled deck.
func New(playerCount int, opts ...Option) (*GameState, error) {
	cfg := newGameConfig(opts)
	return newGameState(playerCount, cards.NewShuffledDeck(cfg.rng), Random, cfg)
}

// NewWithDeck creates a game dealing from deck in the given mode.
func NewWithDeck(playerCount int, deck *cards.Deck, mode Mode, opts ...Option) (*GameState, error) {
	return newGameState(playerCount, deck, mode, newGameConfig(opts))
}

func newGameConfig(opts []Option) *gameConfig {
	cfg := &gameConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.New(randutil.Seed(0))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.id == "" {
		cfg.id = gameid.Generate()
	}
	if cfg.maxTurns <= 0 {
		cfg.maxTurns = DefaultMaxTurns
	}
	return cfg
}

func newGameState(playerCount int, deck *cards.Deck, mode Mode, cfg *gameConfig) (*GameState, error) {
	if playerCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPlayers, playerCount)
	}
	if deck == nil {
		return nil, fmt.Errorf("deck is required")
	}
	if need := playerCount * HandSize; need > deck.Len() {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck has %d", ErrTooManyPlayers, playerCount, need, deck.Len())
	}

	selector := cfg.selector
	if selector == nil {
		switch mode {
		case Random:
			selector = NewRandomSelector(cfg.rng)
		case Sequential:
			selector = SequentialSelector{}
		default:
			return nil, fmt.Errorf("unknown mode %v", mode)
		}
	}

	var sequential bool
	switch selector.(type) {
	case SequentialSelector, *SequentialSelector:
		sequential = true
	}
	stallWindow := cfg.stallWindow
	if stallWindow <= 0 {
		stallWindow = playerCount
	}

	players := make([]*Player, playerCount)
	for i := range players {
		players[i] = NewPlayer()
	}

	initial := make(map[cards.Card]int, deck.Len())
	for _, c := range deck.Cards() {
		initial[c]++
	}

	return &GameState{
		id:                cfg.id,
		deck:              deck,
		players:           players,
		playerCount:       playerCount,
		mode:              mode,
		selector:          selector,
		logger:            cfg.logger.WithPrefix("game").With("game", cfg.id),
		observer:          cfg.observer,
		maxTurns:          cfg.maxTurns,
		sequential:        sequential,
		stallWindow:       stallWindow,
		checkConservation: cfg.checkConservation,
		initial:           initial,
	}, nil
}

// ID returns the game ID
func (s *GameState) ID() string { return s.id }

// Mode returns the selection mode fixed at creation
func (s *GameState) Mode() Mode { return s.mode }

// PlayerCount returns the number of players
func (s *GameState) PlayerCount() int { return s.playerCount }

// Player returns the player at index i, or nil when out of range
func (s *GameState) Player(i int) *Player {
	if i < 0 || i >= len(s.players) {
		return nil
	}
	return s.players[i]
}

// Deck returns the undealt cards
func (s *GameState) Deck() *cards.Deck { return s.deck }

// Turns returns how many asks have been played
func (s *GameState) Turns() int { return s.turns }

// EndReason returns why RunGame stopped, or EndReasonNone while running
func (s *GameState) EndReason() EndReason { return s.endReason }

// Scores returns every player's score in seat order
func (s *GameState) Scores() []int {
	scores := make([]int, len(s.players))
	for i, p := range s.players {
		scores[i] = p.Score
	}
	return scores
}

// NextPlayerIndex returns the seat after player, wrapping to 0
func (s *GameState) NextPlayerIndex(player int) int {
	return (player + 1) % s.playerCount
}

func (s *GameState) checkPlayer(i int) error {
	if i < 0 || i >= s.playerCount {
		return fmt.Errorf("%w: index %d with %d players", ErrInvalidPlayer, i, s.playerCount)
	}
	return nil
}

// Deal gives every player HandSize cards, one at a time in seat order from
// the front of the deck, then matches the pairs each hand was dealt.
func (s *GameState) Deal() error {
	if s.dealt {
		return ErrAlreadyDealt
	}
	if need := s.playerCount * HandSize; s.deck.Len() < need {
		return fmt.Errorf("%w: %d players need %d cards, deck has %d", ErrTooManyPlayers, s.playerCount, need, s.deck.Len())
	}

	for range HandSize {
		for _, p := range s.players {
			card, ok := s.deck.Draw(1)
			if !ok {
				return fmt.Errorf("%w: deck ran out while dealing", ErrTooManyPlayers)
			}
			p.AddCards(card)
		}
	}
	s.dealt = true

	hands := make([]cards.Pile, len(s.players))
	for i := range s.players {
		s.matchPairs(i)
		hands[i] = cards.NewPile(s.players[i].Hand.Cards()...)
	}

	s.logger.Debug("Dealt hands", "players", s.playerCount, "deck", s.deck.Len(), "mode", s.mode)
	s.publish(DealEvent{
		GameID: s.id,
		Mode:   s.mode,
		Hands:  hands,
		Scores: s.Scores(),
		Deck:   s.deck.Len(),
	})
	return nil
}

// PlayTurn plays a single ask for player. A received card is followed by
// pair matching and the same player acts again; a miss draws one card when
// the deck has any and passes the turn.
func (s *GameState) PlayTurn(player int) (TurnResult, error) {
	if err := s.checkPlayer(player); err != nil {
		return NextPlayerTurn, err
	}

	cardIndex, target, err := s.selector.SelectTurn(s, player)
	if err != nil {
		return NextPlayerTurn, fmt.Errorf("select turn for player %d: %w", player, err)
	}

	hand := s.players[player].Hand
	card, ok := hand.At(cardIndex)
	if !ok {
		return NextPlayerTurn, fmt.Errorf("%w: player %d index %d, hand size %d", ErrCardIndexOutOfRange, player, cardIndex, hand.Len())
	}

	result, err := s.AskForCard(player, target, card)
	if err != nil {
		return NextPlayerTurn, err
	}
	s.turns++

	switch r := result.(type) {
	case ReceivedCard:
		s.idle = 0
		s.logger.Debug("Received card", "turn", s.turns, "player", player, "target", target, "card", r.Card)
		s.publish(AskEvent{Turn: s.turns, Player: player, Target: target, Rank: card.Rank, Received: true, Card: r.Card})
		s.matchPairs(player)
		return PlayAgain, nil

	case GoFish:
		s.publish(AskEvent{Turn: s.turns, Player: player, Target: target, Rank: card.Rank})
		drawn, ok := s.deck.Draw(1)
		if !ok {
			s.idle++
			s.logger.Debug("Go fish, deck empty", "turn", s.turns, "player", player, "target", target, "rank", card.Rank)
			s.publish(DrawEvent{Turn: s.turns, Player: player})
			return NextPlayerTurn, nil
		}
		s.idle = 0
		s.players[player].AddCards(drawn)
		drawnCard, _ := drawn.At(0)
		s.logger.Debug("Go fish", "turn", s.turns, "player", player, "target", target, "rank", card.Rank, "drew", drawnCard)
		s.publish(DrawEvent{Turn: s.turns, Player: player, Drawn: true, Card: drawnCard, Deck: s.deck.Len()})
		return NextPlayerTurn, nil

	default:
		panic(fmt.Sprintf("game: unknown ask result %T", result))
	}
}

func (s *GameState) matchPairs(player int) int {
	p := s.players[player]
	before := p.Pairs.Len()
	found := p.MatchPairs()
	if found == 0 {
		return 0
	}

	matched := cards.NewPile(p.Pairs.Cards()[before:]...)
	s.logger.Debug("Matched pairs", "player", player, "pairs", found, "score", p.Score)
	s.publish(PairsEvent{Turn: s.turns, Player: player, Count: found, Score: p.Score, Pairs: matched})
	return found
}

// RunGame plays turns from player 0 until the game ends and returns the
// final condition. The win condition is checked after every ask, so a hand
// emptying in the middle of a streak ends the game at once. Once the deck is
// empty and no ask can move a card the game ends as a stalemate, and the
// turn cap ends it regardless; both are ranked by score.
func (s *GameState) RunGame(ctx context.Context) (EndGameCondition, error) {
	if !s.dealt {
		return nil, ErrNotDealt
	}

	if cond := s.CheckWinCondition(); IsOver(cond) {
		return s.finish(cond, EndReasonEmptyHand), nil
	}

	current := 0
	for {
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			result, err := s.PlayTurn(current)
			if err != nil {
				return nil, fmt.Errorf("turn %d: %w", s.turns+1, err)
			}

			if s.checkConservation {
				if err := s.Validate(); err != nil {
					return nil, fmt.Errorf("turn %d: %w", s.turns, err)
				}
			}

			if cond := s.CheckWinCondition(); IsOver(cond) {
				return s.finish(cond, EndReasonEmptyHand), nil
			}
			if s.deck.IsEmpty() && s.stalled() {
				s.logger.Warn("Stalemate, no card can move", "turns", s.turns, "idle", s.idle)
				return s.finish(DetermineWinner(s.Scores()), EndReasonStalemate), nil
			}
			if s.turns >= s.maxTurns {
				s.logger.Warn("Turn limit reached", "turns", s.turns)
				return s.finish(DetermineWinner(s.Scores()), EndReasonTurnLimit), nil
			}

			switch result {
			case PlayAgain:
				continue
			case NextPlayerTurn:
			default:
				panic(fmt.Sprintf("game: unknown turn result %v", result))
			}
			break
		}
		current = s.NextPlayerIndex(current)
	}
}

// stalled reports whether no further ask can move a card, assuming the deck
// is empty. SequentialSelector repeats the same asks each rotation, so a
// full window of idle asks is final. Any other selector is stuck only when
// no rank is held by two different players.
func (s *GameState) stalled() bool {
	if s.sequential {
		return s.idle >= s.stallWindow
	}
	return !s.rankShared()
}

// rankShared reports whether some rank is held by two different players
func (s *GameState) rankShared() bool {
	holder := make(map[cards.Rank]int)
	for i, p := range s.players {
		for _, c := range p.Hand.Cards() {
			if h, ok := holder[c.Rank]; ok && h != i {
				return true
			}
			holder[c.Rank] = i
		}
	}
	return false
}

func (s *GameState) finish(cond EndGameCondition, reason EndReason) EndGameCondition {
	s.endReason = reason
	s.logger.Info("Game over", "result", cond, "reason", reason, "turns", s.turns, "scores", s.Scores())
	s.publish(GameEndEvent{
		GameID:    s.id,
		Turns:     s.turns,
		Condition: cond,
		Reason:    reason,
		Scores:    s.Scores(),
	})
	return cond
}

// Validate checks that every card the game started with is in exactly one
// place: the deck, one hand or one pairs pile.
func (s *GameState) Validate() error {
	held := make(map[cards.Card]int, len(s.initial))
	for _, c := range s.deck.Cards() {
		held[c]++
	}
	for _, p := range s.players {
		for _, c := range p.Hand.Cards() {
			held[c]++
		}
		for _, c := range p.Pairs.Cards() {
			held[c]++
		}
	}

	for c, want := range s.initial {
		if got := held[c]; got != want {
			return fmt.Errorf("%w: %s seen %d times, want %d", ErrConservation, c, got, want)
		}
	}
	for c := range held {
		if _, ok := s.initial[c]; !ok {
			return fmt.Errorf("%w: unexpected card %s", ErrConservation, c)
		}
	}
	return nil
}
