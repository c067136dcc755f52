// Package transcript records the events of one game with timestamps and
// exports them as a text log or a JSON report.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/gofish/internal/game"
)

// Entry is one recorded event
type Entry struct {
	Time  time.Time
	Event game.Event
}

// Recorder is a game.Observer that keeps every event it sees
type Recorder struct {
	clock quartz.Clock

	mu      sync.Mutex
	entries []Entry
}

var _ game.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder stamping events with clock. A nil clock
// uses the real one.
func NewRecorder(clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Recorder{clock: clock}
}

// Observe records e
func (r *Recorder) Observe(e game.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Time: r.clock.Now(), Event: e})
}

// Entries returns a copy of the recorded entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded events
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Render writes one line per event
func (r *Recorder) Render(w io.Writer) error {
	for _, entry := range r.Entries() {
		if _, err := fmt.Fprintln(w, Describe(entry.Event)); err != nil {
			return err
		}
	}
	return nil
}

// Describe returns a one line description of e
func Describe(e game.Event) string {
	switch ev := e.(type) {
	case game.DealEvent:
		hands := make([]string, len(ev.Hands))
		for i, h := range ev.Hands {
			hands[i] = fmt.Sprintf("player %d [%s]", i, h)
		}
		return fmt.Sprintf("deal (%s): %s; deck %d", ev.Mode, strings.Join(hands, ", "), ev.Deck)
	case game.AskEvent:
		if ev.Received {
			return fmt.Sprintf("turn %d: player %d asks player %d for %s, receives %s", ev.Turn, ev.Player, ev.Target, ev.Rank.Name(), ev.Card)
		}
		return fmt.Sprintf("turn %d: player %d asks player %d for %s, go fish", ev.Turn, ev.Player, ev.Target, ev.Rank.Name())
	case game.DrawEvent:
		if !ev.Drawn {
			return fmt.Sprintf("turn %d: player %d cannot draw, deck empty", ev.Turn, ev.Player)
		}
		return fmt.Sprintf("turn %d: player %d draws %s; deck %d", ev.Turn, ev.Player, ev.Card, ev.Deck)
	case game.PairsEvent:
		return fmt.Sprintf("turn %d: player %d matches %d pair(s) [%s]; score %d", ev.Turn, ev.Player, ev.Count, ev.Pairs, ev.Score)
	case game.GameEndEvent:
		return fmt.Sprintf("game over after %d turns (%s): %s; scores %v", ev.Turns, ev.Reason, ev.Condition, ev.Scores)
	default:
		return fmt.Sprintf("unknown event %T", e)
	}
}

// Record is the JSON form of one event
type Record struct {
	Time     time.Time `json:"time"`
	Type     string    `json:"type"`
	Turn     int       `json:"turn,omitempty"`
	Player   *int      `json:"player,omitempty"`
	Target   *int      `json:"target,omitempty"`
	Rank     string    `json:"rank,omitempty"`
	Received bool      `json:"received,omitempty"`
	Drawn    bool      `json:"drawn,omitempty"`
	Card     string    `json:"card,omitempty"`
	Cards    []string  `json:"cards,omitempty"`
	Hands    []string  `json:"hands,omitempty"`
	Score    *int      `json:"score,omitempty"`
	Deck     *int      `json:"deck,omitempty"`
	Text     string    `json:"text"`
}

// Report is the exported transcript of a finished game
type Report struct {
	GameID     string    `json:"game_id"`
	Mode       string    `json:"mode"`
	Players    int       `json:"players"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Turns      int       `json:"turns"`
	Result     string    `json:"result,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Scores     []int     `json:"scores,omitempty"`
	Events     []Record  `json:"events"`
}

// Report builds the exported form of the recorded events
func (r *Recorder) Report() Report {
	entries := r.Entries()
	rep := Report{Events: make([]Record, 0, len(entries))}
	if len(entries) > 0 {
		rep.StartedAt = entries[0].Time
		rep.FinishedAt = entries[len(entries)-1].Time
	}

	for _, entry := range entries {
		rec := Record{
			Time: entry.Time,
			Type: entry.Event.EventType().String(),
			Text: Describe(entry.Event),
		}

		switch ev := entry.Event.(type) {
		case game.DealEvent:
			rep.GameID = ev.GameID
			rep.Mode = ev.Mode.String()
			rep.Players = len(ev.Hands)
			for _, h := range ev.Hands {
				rec.Hands = append(rec.Hands, h.String())
			}
			rec.Deck = intPtr(ev.Deck)
		case game.AskEvent:
			rec.Turn = ev.Turn
			rec.Player = intPtr(ev.Player)
			rec.Target = intPtr(ev.Target)
			rec.Rank = ev.Rank.String()
			rec.Received = ev.Received
			if ev.Received {
				rec.Card = ev.Card.String()
			}
		case game.DrawEvent:
			rec.Turn = ev.Turn
			rec.Player = intPtr(ev.Player)
			rec.Drawn = ev.Drawn
			if ev.Drawn {
				rec.Card = ev.Card.String()
			}
			rec.Deck = intPtr(ev.Deck)
		case game.PairsEvent:
			rec.Turn = ev.Turn
			rec.Player = intPtr(ev.Player)
			for _, c := range ev.Pairs.Cards() {
				rec.Cards = append(rec.Cards, c.String())
			}
			rec.Score = intPtr(ev.Score)
		case game.GameEndEvent:
			rep.GameID = ev.GameID
			rep.Turns = ev.Turns
			rep.Result = ev.Condition.String()
			rep.Reason = ev.Reason.String()
			rep.Scores = ev.Scores
			rec.Turn = ev.Turns
		}

		rep.Events = append(rep.Events, rec)
	}
	return rep
}

// WriteJSON encodes the report as indented JSON
func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Report())
}

// WriteFile writes the JSON report to filename atomically
func (r *Recorder) WriteFile(filename string) error {
	var b strings.Builder
	if err := r.WriteJSON(&b); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	return writeFileAtomic(filename, []byte(b.String()), 0o644)
}

func intPtr(v int) *int { return &v }
