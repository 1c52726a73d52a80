package game

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// Option configures a Round during creation.
type Option func(*roundConfig)

// roundConfig holds all configuration for creating a round.
type roundConfig struct {
	rng    *rand.Rand
	rngSet bool
	deck   *deck.Deck // If provided, dealt as-is instead of a fresh shuffle
}

func newRoundConfig(opts []Option) *roundConfig {
	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.rngSet && cfg.rng == nil {
		panic("rng is required for round creation")
	}
	if cfg.rng == nil {
		cfg.rng = randutil.New(randutil.Seed())
	}
	return cfg
}

// WithRNG sets the random source used for every shuffle in the round,
// including reshuffles when the deck runs out.
//
//	// Testing - deterministic RNG
//	r := game.Deal(game.WithRNG(randutil.New(42)))
func WithRNG(rng *rand.Rand) Option {
	return func(c *roundConfig) {
		c.rng = rng
		c.rngSet = true
	}
}

// WithDeck deals from a specific deck instead of a freshly shuffled one.
// Once it runs out the round reshuffles a full deck from the RNG.
func WithDeck(d deck.Deck) Option {
	return func(c *roundConfig) {
		cloned := d.Clone()
		c.deck = &cloned
	}
}
