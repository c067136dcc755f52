package game

import (
	"fmt"
	"sort"
	"strings"
)

// EndGameCondition is the result of checking whether a game is over. It is
// one of Continue, Winner or Tie.
type EndGameCondition interface {
	fmt.Stringer
	endGameCondition()
}

// Continue means no player has run out of cards yet
type Continue struct{}

// Winner names the single player with the highest score
type Winner struct {
	Player int
}

// Tie lists, in ascending order, every player sharing the highest score
type Tie struct {
	Players []int
}

func (Continue) endGameCondition() {}
func (Winner) endGameCondition()   {}
func (Tie) endGameCondition()      {}

func (Continue) String() string { return "continue" }

func (w Winner) String() string { return fmt.Sprintf("winner: player %d", w.Player) }

func (t Tie) String() string {
	parts := make([]string, len(t.Players))
	for i, p := range t.Players {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return "tie: players " + strings.Join(parts, ", ")
}

// IsOver reports whether the condition ends the game
func IsOver(c EndGameCondition) bool {
	switch c.(type) {
	case Continue:
		return false
	case Winner, Tie:
		return true
	default:
		panic(fmt.Sprintf("game: unknown end game condition %T", c))
	}
}

// EndReason records why a finished game stopped
type EndReason string

const (
	EndReasonNone      EndReason = ""
	EndReasonEmptyHand EndReason = "empty_hand"
	EndReasonStalemate EndReason = "stalemate"
	EndReasonTurnLimit EndReason = "turn_limit"
)

func (r EndReason) String() string {
	if r == EndReasonNone {
		return "none"
	}
	return string(r)
}

// DetermineWinner ranks players by score. A single highest score is a
// Winner, a shared highest score is a Tie and no players at all is Continue.
// Ties are never broken.
func DetermineWinner(scores []int) EndGameCondition {
	leaders := MaxScoreIndices(scores)
	switch len(leaders) {
	case 0:
		return Continue{}
	case 1:
		return Winner{Player: leaders[0]}
	default:
		return Tie{Players: leaders}
	}
}

// MaxScoreIndices returns the ascending indices of every player holding the
// maximum score.
func MaxScoreIndices(scores []int) []int {
	if len(scores) == 0 {
		return nil
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	var leaders []int
	for i, s := range scores {
		if s == best {
			leaders = append(leaders, i)
		}
	}
	sort.Ints(leaders)
	return leaders
}

// CheckWinCondition ends the game as soon as any player's hand is empty,
// ranking everyone by score. Otherwise it returns Continue.
func (s *GameState) CheckWinCondition() EndGameCondition {
	if s.FirstEmptyHand() < 0 {
		return Continue{}
	}
	return DetermineWinner(s.Scores())
}

// FirstEmptyHand returns the lowest index of a player with no cards, or -1.
func (s *GameState) FirstEmptyHand() int {
	for i, p := range s.players {
		if p.HandSize() == 0 {
			return i
		}
	}
	return -1
}
