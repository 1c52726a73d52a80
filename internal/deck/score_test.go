package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/randutil"
)

func TestScore(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty", "", 0},
		{"pair of tens", "10,10", 20},
		{"bust reports over 21 total", "10,10,5", 25},
		{"two aces and nine", "A,A,9", 21},
		{"three aces and nine", "A,A,A,9", 12},
		{"blackjack", "A,K", 21},
		{"soft seventeen", "A,6", 17},
		{"ace softens after hit", "A,6,10", 17},
		{"four aces", "A,A,A,A", 14},
		{"faces", "J,Q", 20},
		{"all aces bust", "A,A,K,Q", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(MustParseCards(tt.cards)))
		})
	}
}

func TestScoreIgnoresOrder(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)
	for range 200 {
		d := NewShuffled(rng)
		n := 2 + rng.IntN(5)
		hand := d.Cards()[:n]

		reversed := make([]Card, n)
		for i, c := range hand {
			reversed[n-1-i] = c
		}
		permuted := Shuffle(FromCards(hand...), rng).Cards()

		want := Score(hand)
		assert.Equal(t, want, Score(reversed), "hand %v", hand)
		assert.Equal(t, want, Score(permuted), "hand %v", hand)
	}
}

func TestIsSoft(t *testing.T) {
	t.Parallel()
	assert.True(t, IsSoft(MustParseCards("A,6")))
	assert.False(t, IsSoft(MustParseCards("A,6,10")))
	assert.False(t, IsSoft(MustParseCards("10,7")))
	assert.True(t, IsSoft(MustParseCards("A,A")))
}

func TestIsBust(t *testing.T) {
	t.Parallel()
	assert.True(t, IsBust(MustParseCards("10,10,5")))
	assert.False(t, IsBust(MustParseCards("A,A,A,9")))
}

func TestCanSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  bool
	}{
		{"pair of eights", "8h,8d", true},
		{"pair of aces", "As,Ah", true},
		{"pair of kings", "Ks,Kc", true},
		{"ten and king are not a pair", "10s,Kc", false},
		{"unequal ranks", "9s,8s", false},
		{"three of a kind", "8h,8d,8c", false},
		{"single card", "8h", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSplit(MustParseCards(tt.cards)))
		})
	}
}
