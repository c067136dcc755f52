package cards

import (
	"errors"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", expected: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of diamonds", input: "TD", expected: Card{Rank: Ten, Suit: Diamonds}},
		{name: "two of clubs", input: "2C", expected: Card{Rank: Two, Suit: Clubs}},
		{name: "case insensitive", input: "jh", expected: Card{Rank: Jack, Suit: Hearts}},
		{name: "surrounding space", input: " 9S ", expected: Card{Rank: Nine, Suit: Spades}},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "too long", input: "10S", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("expected ErrInvalidCard, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCardRendering(t *testing.T) {
	c := NewCard(Ten, Hearts)
	if c.String() != "TH" {
		t.Errorf("String() = %q, want TH", c.String())
	}
	if c.Symbol() != "T♥" {
		t.Errorf("Symbol() = %q, want T♥", c.Symbol())
	}
	if !c.IsRed() {
		t.Error("hearts should be red")
	}
	if NewCard(Ace, Clubs).IsRed() {
		t.Error("clubs should not be red")
	}
}

func TestCardRoundTripsThroughIndex(t *testing.T) {
	for _, c := range StandardCards() {
		parsed, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseCard(%q) = %v", c.String(), parsed)
		}
	}
}

func TestRankNames(t *testing.T) {
	if Jack.Name() != "jack" {
		t.Errorf("Jack.Name() = %q", Jack.Name())
	}
	if Rank(99).String() != "?" {
		t.Errorf("invalid rank should render as ?")
	}
}
