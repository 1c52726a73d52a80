package deck

import (
	"errors"
	"testing"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "comma separated",
			input: "Ah,Kd,10c",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Diamonds},
				{Rank: Ten, Suit: Clubs},
			},
		},
		{
			name:  "space separated with T for ten",
			input: "Ts 9h",
			expected: []Card{
				{Rank: Ten, Suit: Spades},
				{Rank: Nine, Suit: Hearts},
			},
		},
		{
			name:  "bare ranks default to spades",
			input: "A,A,9",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: Ace, Suit: Spades},
				{Rank: Nine, Suit: Spades},
			},
		},
		{
			name:  "suit symbols",
			input: "Q♥ 2♣",
			expected: []Card{
				{Rank: Queen, Suit: Hearts},
				{Rank: Two, Suit: Clubs},
			},
		},
		{
			name:  "case insensitive",
			input: "aS,kH",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Hearts},
			},
		},
		{
			name:    "invalid rank",
			input:   "Xs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "Ax",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Errorf("ParseCards() error = %v, want ErrInvalidCard", err)
				}
				return
			}
			if !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("As,Ks")
	expected := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Spades},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}
	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			if got := Value(NewCard(tt.rank, Hearts)); got != tt.want {
				t.Errorf("Value(%s) = %d, want %d", tt.rank, got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Ten, Hearts).String(); got != "10♥" {
		t.Errorf("String() = %q, want %q", got, "10♥")
	}
	if got := NewCard(Ace, Spades).String(); got != "A♠" {
		t.Errorf("String() = %q, want %q", got, "A♠")
	}
	if !NewCard(Two, Diamonds).IsRed() || NewCard(Two, Clubs).IsRed() {
		t.Error("IsRed() wrong for diamonds/clubs")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
