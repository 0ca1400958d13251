package engine

// PowerUpKind represents the different power-up variants.
type PowerUpKind int

const (
	PowerSlow  PowerUpKind = iota // Slow motion fruit
	PowerBoost                    // Speed boost
	PowerTrap                     // Ends the run when eaten
	powerKindCount                // Sentinel for counting kinds
)

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerSlow:
		return 'S'
	case PowerBoost:
		return 'B'
	case PowerTrap:
		return 'X'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSlow:
		return "slow"
	case PowerBoost:
		return "boost"
	case PowerTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// PowerUp is a pickup sitting on the field. FieldTicks counts down every
// tick; at zero the pickup disappears unconsumed. EffectTicks is the
// duration of the effect granted on pickup, fixed at spawn time.
type PowerUp struct {
	Cell        Cell
	Kind        PowerUpKind
	FieldTicks  int
	EffectTicks int
}

// ActiveEffect is the single currently applied power-up modifier. Picking
// up another power-up overwrites it; durations never stack.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining int
}
