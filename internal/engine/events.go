package engine

// EventKind names the things that happened during a tick. Render, audio
// and persistence collaborators react to these; the engine itself never
// consumes them.
type EventKind int

const (
	EventEat EventKind = iota
	EventPowerUp
	EventLevelUp
	EventTrap
	EventCollision
)

func (k EventKind) String() string {
	switch k {
	case EventEat:
		return "eat"
	case EventPowerUp:
		return "powerup"
	case EventLevelUp:
		return "levelup"
	case EventTrap:
		return "trap"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Event is a single per-tick occurrence. Power is set for EventPowerUp,
// Collision for EventCollision.
type Event struct {
	Kind      EventKind
	Power     PowerUpKind
	Collision CollisionKind
}
