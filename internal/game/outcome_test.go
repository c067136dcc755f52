package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   EndGameCondition
	}{
		{name: "single leader", scores: []int{1, 2, 3, 4}, want: Winner{Player: 3}},
		{name: "shared leader", scores: []int{1, 4, 4, 3}, want: Tie{Players: []int{1, 2}}},
		{name: "everyone tied", scores: []int{0, 0, 0}, want: Tie{Players: []int{0, 1, 2}}},
		{name: "leader first", scores: []int{6, 5}, want: Winner{Player: 0}},
		{name: "no players", scores: nil, want: Continue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineWinner(tt.scores))
		})
	}
}

func TestCheckWinConditionContinuesWhileHandsHoldCards(t *testing.T) {
	g := newFixedGame(t, 4)
	for i, score := range []int{1, 2, 3, 4} {
		g.Player(i).Score = score
	}

	assert.Equal(t, Continue{}, g.CheckWinCondition())
}

func TestCheckWinConditionEmptyHand(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		empty  int
		want   EndGameCondition
	}{
		{name: "winner", scores: []int{1, 2, 3, 4}, empty: 0, want: Winner{Player: 3}},
		{name: "tie", scores: []int{1, 4, 4, 3}, empty: 3, want: Tie{Players: []int{1, 2}}},
		{name: "empty hand does not imply win", scores: []int{5, 1, 0, 0}, empty: 2, want: Winner{Player: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFixedGame(t, 4)
			for i, score := range tt.scores {
				g.Player(i).Score = score
			}
			setHand(t, g, tt.empty, "")

			assert.Equal(t, tt.empty, g.FirstEmptyHand())
			assert.Equal(t, tt.want, g.CheckWinCondition())
		})
	}
}

func TestIsOver(t *testing.T) {
	assert.False(t, IsOver(Continue{}))
	assert.True(t, IsOver(Winner{Player: 1}))
	assert.True(t, IsOver(Tie{Players: []int{0, 1}}))
}

func TestEndGameConditionStrings(t *testing.T) {
	assert.Equal(t, "continue", Continue{}.String())
	assert.Equal(t, "winner: player 2", Winner{Player: 2}.String())
	assert.Equal(t, "tie: players 0, 3", Tie{Players: []int{0, 3}}.String())
	assert.Equal(t, "none", EndReasonNone.String())
	assert.Equal(t, "stalemate", EndReasonStalemate.String())
}
