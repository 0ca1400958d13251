package engine

import "math"

// Particle lifetimes and spawn counts, in ticks.
const (
	explosionLifetime = 25
	trailLifetime     = 10
	sparkleLifetime   = 15

	sparkleCount = 3

	// ExplosionCollision and ExplosionTrap are the burst sizes used when a
	// run ends.
	ExplosionCollision = 10
	ExplosionTrap      = 12
)

// Particle is an ephemeral cosmetic entity with fractional position. It
// carries no gameplay authority.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Age      int
	Lifetime int
	Tint     int // Theme palette slot, 0..2
}

// Glyph returns the display character, fading as the particle ages.
func (p *Particle) Glyph() rune {
	ratio := 1 - float64(p.Age)/float64(p.Lifetime)
	switch {
	case ratio > 0.7:
		return '★'
	case ratio > 0.4:
		return '✦'
	case ratio > 0.2:
		return '·'
	default:
		return '`'
	}
}

// Cell returns the particle's position truncated to grid coordinates.
func (p *Particle) Cell() Cell {
	return Cell{X: int(p.X), Y: int(p.Y)}
}

// ParticleScheduler spawns and ages particles. It owns its own RNG stream
// so cosmetic draws never disturb the gameplay RNG, and it can be disabled
// wholesale without changing any simulation outcome.
type ParticleScheduler struct {
	arena   Arena
	rng     Rand
	enabled bool
	parts   []Particle
}

// NewParticleScheduler creates a scheduler bound to the arena.
func NewParticleScheduler(a Arena, seed int64, enabled bool) *ParticleScheduler {
	return &ParticleScheduler{
		arena:   a,
		rng:     NewSimpleRNG(seed),
		enabled: enabled,
	}
}

// SpawnExplosion emits count particles in a ring around the cell.
func (ps *ParticleScheduler) SpawnExplosion(at Cell, count int) {
	if !ps.enabled {
		return
	}
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		ps.parts = append(ps.parts, Particle{
			X:        float64(at.X),
			Y:        float64(at.Y),
			VX:       math.Cos(angle) * 0.3,
			VY:       math.Sin(angle) * 0.5,
			Lifetime: explosionLifetime,
			Tint:     ps.rng.Intn(3),
		})
	}
}

// SpawnTrail emits a single particle drifting opposite the heading. Used
// when the snake turns.
func (ps *ParticleScheduler) SpawnTrail(at Cell, dir Direction) {
	if !ps.enabled {
		return
	}
	dx, dy := dir.Vector()
	ps.parts = append(ps.parts, Particle{
		X:        float64(at.X),
		Y:        float64(at.Y),
		VX:       -0.2 * float64(dx),
		VY:       -0.2 * float64(dy),
		Lifetime: trailLifetime,
	})
}

// SpawnSparkle emits a small stationary twinkle around the cell.
func (ps *ParticleScheduler) SpawnSparkle(at Cell) {
	if !ps.enabled {
		return
	}
	for i := 0; i < sparkleCount; i++ {
		ps.parts = append(ps.parts, Particle{
			X:        float64(at.X) + ps.rng.Float64() - 0.5,
			Y:        float64(at.Y) + ps.rng.Float64() - 0.5,
			Lifetime: sparkleLifetime,
			Tint:     ps.rng.Intn(3),
		})
	}
}

// Update advances every particle by its velocity, ages it, and discards
// particles that expired or left the arena interior.
func (ps *ParticleScheduler) Update() {
	alive := ps.parts[:0]
	for _, p := range ps.parts {
		p.X += p.VX
		p.Y += p.VY
		p.Age++
		if p.Age >= p.Lifetime {
			continue
		}
		if !ps.arena.Contains(p.Cell()) {
			continue
		}
		alive = append(alive, p)
	}
	ps.parts = alive
}

// Particles returns a copy of the live particles for rendering.
func (ps *ParticleScheduler) Particles() []Particle {
	out := make([]Particle, len(ps.parts))
	copy(out, ps.parts)
	return out
}

// Len returns the number of live particles.
func (ps *ParticleScheduler) Len() int {
	return len(ps.parts)
}
