package bankroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

func TestPayout(t *testing.T) {
	t.Parallel()
	tests := []struct {
		result game.Result
		stake  int
		want   int
	}{
		{game.Win, 10, 20},
		{game.Blackjack, 10, 25},
		{game.Blackjack, 5, 12},
		{game.Push, 10, 10},
		{game.Lose, 10, 0},
		{game.Win, 20, 40},
		{game.Undetermined, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Payout(tt.result, tt.stake))
		})
	}
}

func TestPlaceBet(t *testing.T) {
	t.Parallel()
	l := New(15, 10)

	require.NoError(t, l.PlaceBet())
	assert.Equal(t, 5, l.Balance())
	assert.Equal(t, []int{10}, l.Bets())
	assert.False(t, l.CanBet())

	_, err := l.Settle([]game.Result{game.Lose})
	require.NoError(t, err)

	err = l.PlaceBet()
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 5, l.Balance())
}

func TestSettleRound(t *testing.T) {
	t.Parallel()

	t.Run("blackjack pays three to two", func(t *testing.T) {
		l := New(1000, 10)
		require.NoError(t, l.PlaceBet())

		s, err := l.Settle([]game.Result{game.Blackjack})
		require.NoError(t, err)

		assert.Equal(t, 25, s.Paid)
		assert.Equal(t, 15, s.Net())
		assert.Equal(t, 1015, l.Balance())
		assert.Equal(t, Stats{Wins: 1, Blackjacks: 1}, l.Stats())
	})

	t.Run("split hands settle separately", func(t *testing.T) {
		l := New(1000, 10)
		require.NoError(t, l.PlaceBet())
		require.NoError(t, l.Split(0))
		require.NoError(t, l.Double(1))
		assert.Equal(t, []int{10, 20}, l.Bets())
		assert.Equal(t, 30, l.TotalBet())
		assert.Equal(t, 970, l.Balance())

		s, err := l.Settle([]game.Result{game.Push, game.Win})
		require.NoError(t, err)

		assert.Equal(t, []int{10, 40}, s.Payouts)
		assert.Equal(t, 20, s.Net())
		assert.Equal(t, 1020, l.Balance())
		assert.Equal(t, Stats{Wins: 1, Pushes: 1}, l.Stats())
	})

	t.Run("settles once", func(t *testing.T) {
		l := New(1000, 10)
		require.NoError(t, l.PlaceBet())
		_, err := l.Settle([]game.Result{game.Lose})
		require.NoError(t, err)

		_, err = l.Settle([]game.Result{game.Lose})
		assert.ErrorIs(t, err, ErrAlreadySettled)
		assert.Equal(t, 1, l.Stats().Losses)
	})

	t.Run("rejects open hands", func(t *testing.T) {
		l := New(1000, 10)
		require.NoError(t, l.PlaceBet())
		_, err := l.Settle([]game.Result{game.Undetermined})
		assert.ErrorIs(t, err, ErrUnsettledHand)
	})

	t.Run("rejects mismatched hands", func(t *testing.T) {
		l := New(1000, 10)
		require.NoError(t, l.PlaceBet())
		_, err := l.Settle([]game.Result{game.Win, game.Win})
		assert.ErrorIs(t, err, ErrNoHand)
	})
}

func TestSplitInsertsAfterHand(t *testing.T) {
	t.Parallel()
	l := New(1000, 10)
	require.NoError(t, l.PlaceBet())
	require.NoError(t, l.Split(0))
	require.NoError(t, l.Double(1))
	require.NoError(t, l.Split(0))

	assert.Equal(t, []int{10, 10, 20}, l.Bets())
	assert.ErrorIs(t, l.Split(5), ErrNoHand)
	assert.ErrorIs(t, l.Double(-1), ErrNoHand)
}

func TestDoubleNeedsFunds(t *testing.T) {
	t.Parallel()
	l := New(15, 10)
	require.NoError(t, l.PlaceBet())

	assert.False(t, l.CanDouble(0))
	assert.ErrorIs(t, l.Double(0), ErrInsufficientFunds)
	assert.False(t, l.CanSplit(0))
	assert.ErrorIs(t, l.Split(0), ErrInsufficientFunds)
	assert.Equal(t, []int{10}, l.Bets())
}

func TestNetFromRound(t *testing.T) {
	t.Parallel()
	stack := deck.Stacked(deck.MustParseCards("5h,6s,6d,10c,10h,Kd")...)
	r := game.Deal(game.WithDeck(stack), game.WithRNG(randutil.New(1))).Double()
	require.Equal(t, game.Complete, r.Phase)
	require.Equal(t, game.Win, r.Hands[0].Result)

	assert.Equal(t, 20, Net(r, 10), "doubled win pays the doubled stake")
	assert.Equal(t, 20, Stake(r.Hands[0], 10))
}

func TestStats(t *testing.T) {
	t.Parallel()
	var s Stats
	assert.Equal(t, 0, s.WinRate())

	for _, r := range []game.Result{game.Win, game.Blackjack, game.Lose, game.Push, game.Undetermined} {
		s.Record(r)
	}
	assert.Equal(t, Stats{Wins: 2, Losses: 1, Pushes: 1, Blackjacks: 1}, s)
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, 50, s.WinRate())

	s.Record(game.Lose)
	assert.Equal(t, 40, s.WinRate())
}
