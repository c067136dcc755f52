package statistics

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lox/gofish/internal/game"
)

// GameResult represents the outcome of a single Go Fish game
type GameResult struct {
	GameID    string
	Seed      int64 // RNG seed for this game (for replay)
	Players   int
	Turns     int
	Condition game.EndGameCondition
	Reason    game.EndReason
	Scores    []int
}

// SeatStats tracks results for one seat at the table
type SeatStats struct {
	Wins     int // outright wins
	Ties     int // games where this seat shared the top score
	SumScore int
}

// Statistics aggregates the results of many games
type Statistics struct {
	Games     int
	Players   int
	SumTurns  float64
	SumTurns2 float64   // Sum of squares for variance calculation
	Values    []float64 // turn counts for median/percentile calculation

	Wins    int // games with a single winner
	Ties    int // games ending in a tie
	Seats   []SeatStats
	Reasons map[game.EndReason]int

	MaxTurns int
	MinTurns int
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	if s.Reasons == nil {
		s.Reasons = make(map[game.EndReason]int)
	}
	if result.Players > s.Players {
		s.Players = result.Players
	}
	for len(s.Seats) < s.Players {
		s.Seats = append(s.Seats, SeatStats{})
	}

	turns := float64(result.Turns)
	if s.Games == 0 || result.Turns < s.MinTurns {
		s.MinTurns = result.Turns
	}
	if result.Turns > s.MaxTurns {
		s.MaxTurns = result.Turns
	}
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)
	s.Reasons[result.Reason]++

	for seat, score := range result.Scores {
		if seat < len(s.Seats) {
			s.Seats[seat].SumScore += score
		}
	}

	switch c := result.Condition.(type) {
	case game.Winner:
		s.Wins++
		if c.Player >= 0 && c.Player < len(s.Seats) {
			s.Seats[c.Player].Wins++
		}
	case game.Tie:
		s.Ties++
		for _, p := range c.Players {
			if p >= 0 && p < len(s.Seats) {
				s.Seats[p].Ties++
			}
		}
	case game.Continue, nil:
		// unfinished games only count toward turns and reasons
	default:
		panic(fmt.Sprintf("statistics: unknown end game condition %T", c))
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Games == 0 {
		return
	}
	if s.Games == 0 || other.MinTurns < s.MinTurns {
		s.MinTurns = other.MinTurns
	}
	if other.MaxTurns > s.MaxTurns {
		s.MaxTurns = other.MaxTurns
	}
	s.Games += other.Games
	s.SumTurns += other.SumTurns
	s.SumTurns2 += other.SumTurns2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Ties += other.Ties

	if other.Players > s.Players {
		s.Players = other.Players
	}
	for len(s.Seats) < s.Players {
		s.Seats = append(s.Seats, SeatStats{})
	}
	for i, seat := range other.Seats {
		s.Seats[i].Wins += seat.Wins
		s.Seats[i].Ties += seat.Ties
		s.Seats[i].SumScore += seat.SumScore
	}

	if s.Reasons == nil {
		s.Reasons = make(map[game.EndReason]int)
	}
	for reason, n := range other.Reasons {
		s.Reasons[reason] += n
	}
}

// MeanTurns returns the arithmetic mean of asks per game
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of turns per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of turns per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// Median returns the median number of turns
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the turn count at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of games seat won outright
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Seats) {
		return 0
	}
	return float64(s.Seats[seat].Wins) / float64(s.Games)
}

// MeanScore returns the average pairs matched by seat
func (s *Statistics) MeanScore(seat int) float64 {
	if s.Games == 0 || seat < 0 || seat >= len(s.Seats) {
		return 0
	}
	return float64(s.Seats[seat].SumScore) / float64(s.Games)
}

// FirstPlayerAdvantage returns seat 0's outright win rate divided by the
// average outright win rate of all seats. 1.0 means no advantage.
func (s *Statistics) FirstPlayerAdvantage() float64 {
	if s.Wins == 0 || s.Players == 0 {
		return 0
	}
	fair := float64(s.Wins) / float64(s.Players) / float64(s.Games)
	return s.WinRate(0) / fair
}

// EndReasons returns the recorded end reasons in a stable order
func (s *Statistics) EndReasons() []game.EndReason {
	reasons := maps.Keys(s.Reasons)
	slices.Sort(reasons)
	return reasons
}

// Validate checks the tallies are internally consistent
func (s *Statistics) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("negative game count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("value count mismatch: %d values for %d games", len(s.Values), s.Games)
	}
	if s.Wins+s.Ties > s.Games {
		return fmt.Errorf("more results than games: %d wins + %d ties > %d", s.Wins, s.Ties, s.Games)
	}

	seatWins := 0
	for _, seat := range s.Seats {
		seatWins += seat.Wins
	}
	if seatWins != s.Wins {
		return fmt.Errorf("seat wins mismatch: seats sum to %d, recorded %d", seatWins, s.Wins)
	}

	reasons := 0
	for _, n := range s.Reasons {
		reasons += n
	}
	if reasons != s.Games {
		return fmt.Errorf("end reason mismatch: %d reasons for %d games", reasons, s.Games)
	}

	if math.IsNaN(s.SumTurns) || math.IsInf(s.SumTurns, 0) {
		return fmt.Errorf("invalid turn sum: %f", s.SumTurns)
	}
	if s.Games > 1 && s.Variance() < -1e-9 {
		return fmt.Errorf("negative variance: %f", s.Variance())
	}
	return nil
}
