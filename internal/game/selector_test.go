package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/gofish/internal/randutil"
)

func TestSequentialSelector(t *testing.T) {
	g := newFixedGame(t, 4)

	for player := 0; player < 4; player++ {
		cardIndex, target, err := SequentialSelector{}.SelectTurn(g, player)
		require.NoError(t, err)
		assert.Equal(t, 0, cardIndex)
		assert.Equal(t, (player+1)%4, target)
	}
}

func TestSequentialSelectorEmptyHand(t *testing.T) {
	g := newFixedGame(t, 2)
	setHand(t, g, 0, "")

	_, _, err := SequentialSelector{}.SelectTurn(g, 0)
	assert.ErrorIs(t, err, ErrEmptyHand)
}

func TestRandomSelectorBounds(t *testing.T) {
	g := newFixedGame(t, 4)
	sel := NewRandomSelector(randutil.New(99))

	targets := make(map[int]int)
	indices := make(map[int]int)
	for i := 0; i < 2000; i++ {
		cardIndex, target, err := sel.SelectTurn(g, 2)
		require.NoError(t, err)
		require.NotEqual(t, 2, target, "never target yourself")
		require.GreaterOrEqual(t, target, 0)
		require.Less(t, target, 4)
		require.GreaterOrEqual(t, cardIndex, 0)
		require.Less(t, cardIndex, g.Player(2).HandSize())
		targets[target]++
		indices[cardIndex]++
	}

	assert.Len(t, targets, 3, "every opponent should be targeted")
	assert.Len(t, indices, g.Player(2).HandSize(), "every card should be picked")
}

func TestRandomSelectorEmptyHand(t *testing.T) {
	g := newFixedGame(t, 2)
	setHand(t, g, 1, "")

	_, _, err := NewRandomSelector(randutil.New(1)).SelectTurn(g, 1)
	assert.ErrorIs(t, err, ErrEmptyHand)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "random", want: Random},
		{input: "Sequential", want: Sequential},
		{input: "", want: Random},
		{input: "chaotic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Mode {
	t.Helper()
	m, err := ParseMode(s)
	require.NoError(t, err)
	return m
}
