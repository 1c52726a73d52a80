package strategy

// Action is a move the advisor can recommend
type Action int

const (
	// Hit takes another card
	Hit Action = iota
	// Stand keeps the current total
	Stand
	// Split plays a pair as two hands
	Split
	// Double doubles the stake for exactly one more card
	Double
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Split:
		return "split"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Label returns the headline shown to the player. Doubling is not always
// allowed, so its label mentions the fallback.
func (a Action) Label() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Split:
		return "SPLIT"
	case Double:
		return "DOUBLE (or Hit)"
	default:
		return "-"
	}
}

// Fallback returns the action to take when a recommended double is not
// allowed (third card, short bankroll).
func (a Action) Fallback(canDouble bool) Action {
	if a == Double && !canDouble {
		return Hit
	}
	return a
}
