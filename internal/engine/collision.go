package engine

// CollisionKind classifies what the snake's head ran into.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
	CollisionObstacle
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// DetectCollision evaluates the post-move body against the arena and the
// obstacle set. The body is head first and the head has already been
// prepended, so the self check runs against segments 1..end. All three
// conditions are evaluated; when several hold at once the verdict order is
// wall, self, obstacle.
func DetectCollision(a Arena, body []Cell, obstacles map[Cell]bool) CollisionKind {
	if len(body) == 0 {
		return CollisionNone
	}
	head := body[0]

	wall := !a.Contains(head)
	self := false
	for _, seg := range body[1:] {
		if seg == head {
			self = true
			break
		}
	}
	obstacle := obstacles[head]

	switch {
	case wall:
		return CollisionWall
	case self:
		return CollisionSelf
	case obstacle:
		return CollisionObstacle
	default:
		return CollisionNone
	}
}
