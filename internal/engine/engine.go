package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// initialLength is the snake's starting body length. The arena invariant
// (interior at least 3x3) exists so this body always fits.
const initialLength = 3

// Input carries the buffered player intent applied at the start of a tick.
// The platform layer keeps only the most recent directional key pressed
// since the previous tick.
type Input struct {
	Dir    Direction
	HasDir bool
}

// Turn returns an Input carrying a direction change.
func Turn(d Direction) Input {
	return Input{Dir: d, HasDir: true}
}

// StepOutcome is the per-tick result handed to the render, audio and
// persistence collaborators. All slices are copies; the outcome stays
// valid after further ticks.
type StepOutcome struct {
	Tick  uint64
	Alive bool

	Snake []Cell
	Dir   Direction
	Food  Cell

	Obstacles []Cell
	PowerUps  []PowerUp

	Score         int
	Level         int
	NextThreshold int

	Effect *ActiveEffect
	Delay  time.Duration

	Particles []Particle
	Events    []Event
}

// Engine is the tick orchestrator. It owns the authoritative game state
// and advances it one discrete step per call; there is no internal clock.
// A restart means discarding the engine and constructing a fresh one.
type Engine struct {
	cfg   Config
	arena Arena
	rng   Rand
	tick  uint64
	alive bool

	snake       *Snake
	food        Cell
	obstacles   []Cell
	obstacleSet map[Cell]bool
	powerUps    []PowerUp

	score         int
	level         int
	nextThreshold int
	baseDelay     time.Duration
	effect        *ActiveEffect

	particles *ParticleScheduler

	events []Event // Rebuilt every tick
}

// New constructs a ready-to-run engine or fails fast when the
// configuration cannot host a game.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	arena, err := ArenaForScreen(cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:           cfg,
		arena:         arena,
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		alive:         true,
		level:         1,
		nextThreshold: cfg.FirstLevelThreshold,
		baseDelay:     cfg.BaseDelay,
		obstacleSet:   make(map[Cell]bool),
		particles:     NewParticleScheduler(arena, cfg.Seed, cfg.Particles),
	}
	e.snake = NewSnake(arena.Center(), DirRight, initialLength)
	if !arena.Contains(e.snake.Cells()[initialLength-1]) {
		// Cannot happen with a valid arena; guard for future tuning.
		return nil, fmt.Errorf("engine: initial snake does not fit arena %dx%d", arena.Width(), arena.Height())
	}
	e.placeFood()
	return e, nil
}

// Step advances the simulation by one tick, applying the buffered input
// first. Calling Step on a dead engine is a no-op returning the final
// outcome.
func (e *Engine) Step(in Input) StepOutcome {
	if !e.alive {
		return e.Outcome()
	}
	e.tick++
	e.events = e.events[:0]

	// 1. Apply the buffered direction; a turn leaves a short trail.
	if in.HasDir && e.snake.SetDirection(in.Dir) {
		e.particles.SpawnTrail(e.snake.Head(), e.snake.Dir())
	}

	// 2. Advance. Food is checked before the body mutates so growth and
	// constant-length moves take different tail paths.
	ate := e.snake.NextHead() == e.food
	e.snake.Advance(ate)

	// 3. Collision ends the run immediately; bookkeeping and particle
	// aging are skipped for this tick.
	if kind := DetectCollision(e.arena, e.snake.Cells(), e.obstacleSet); kind != CollisionNone {
		e.alive = false
		e.events = append(e.events, Event{Kind: EventCollision, Collision: kind})
		e.particles.SpawnExplosion(e.snake.Head(), ExplosionCollision)
		return e.Outcome()
	}

	// 4. Power-up, score and level bookkeeping.
	if trapped := e.resolveProgress(ate); trapped {
		e.alive = false
		return e.Outcome()
	}

	// 5. Age particles.
	e.particles.Update()

	return e.Outcome()
}

// resolveProgress runs the per-tick power-up and level state machine after
// a successful move. Step order is fixed: pickup, food, level, active
// effect countdown, field lifetimes. Returns true when a trap ended the
// run.
func (e *Engine) resolveProgress(ate bool) bool {
	head := e.snake.Head()

	// 1. Power-up pickup. A trap is fatal on the spot: no score, no
	// effect, and the remaining steps do not run.
	if i := e.powerUpAt(head); i >= 0 {
		pu := e.powerUps[i]
		e.powerUps = append(e.powerUps[:i], e.powerUps[i+1:]...)
		switch pu.Kind {
		case PowerTrap:
			e.events = append(e.events, Event{Kind: EventTrap})
			e.particles.SpawnExplosion(head, ExplosionTrap)
			return true
		case PowerSlow:
			e.effect = &ActiveEffect{Kind: PowerSlow, Remaining: pu.EffectTicks}
			e.score += e.cfg.SlowScore
			e.events = append(e.events, Event{Kind: EventPowerUp, Power: PowerSlow})
		case PowerBoost:
			e.effect = &ActiveEffect{Kind: PowerBoost, Remaining: pu.EffectTicks}
			e.score += e.cfg.BoostScore
			e.events = append(e.events, Event{Kind: EventPowerUp, Power: PowerBoost})
		}
	}

	// 2. Food consequences: score, respawn, power-up roll, speed decay.
	if ate {
		e.score += e.cfg.FoodScore
		e.events = append(e.events, Event{Kind: EventEat})
		e.particles.SpawnSparkle(head)
		e.placeFood()
		if e.rng.Float64() < e.cfg.PowerUpChance {
			e.spawnPowerUp()
		}
		if e.baseDelay > e.cfg.MinDelay {
			e.baseDelay = time.Duration(float64(e.baseDelay) * e.cfg.SpeedDecay)
		}
	}

	// 3. Level progression regenerates the whole obstacle set.
	if e.score >= e.nextThreshold {
		e.level++
		e.nextThreshold += e.cfg.LevelThresholdStep
		e.placeObstacles()
		e.events = append(e.events, Event{Kind: EventLevelUp})
	}

	// 4. Active effect countdown. The decrement also applies on the
	// acquisition tick, and expiry reverts to the decayed base delay.
	if e.effect != nil {
		e.effect.Remaining--
		if e.effect.Remaining <= 0 {
			e.effect = nil
		}
	}

	// 5. Field lifetimes of unconsumed pickups.
	kept := e.powerUps[:0]
	for i := range e.powerUps {
		e.powerUps[i].FieldTicks--
		if e.powerUps[i].FieldTicks > 0 {
			kept = append(kept, e.powerUps[i])
		}
	}
	e.powerUps = kept

	return false
}

// powerUpAt returns the index of the pickup on the given cell, or -1.
func (e *Engine) powerUpAt(c Cell) int {
	for i := range e.powerUps {
		if e.powerUps[i].Cell == c {
			return i
		}
	}
	return -1
}

// placeFood puts food on a random cell free of the snake and obstacles.
// Food may land on a pickup; the pickup resolves first when eaten.
func (e *Engine) placeFood() {
	forbidden := make(map[Cell]bool, e.snake.Len()+len(e.obstacles))
	for _, c := range e.snake.Cells() {
		forbidden[c] = true
	}
	for _, c := range e.obstacles {
		forbidden[c] = true
	}
	e.food = PlaceRandom(e.rng, e.arena, forbidden)
}

// spawnPowerUp adds a pickup of a uniformly chosen kind on a cell free of
// the snake, food, obstacles and other pickups.
func (e *Engine) spawnPowerUp() {
	kind := PowerUpKind(e.rng.Intn(int(powerKindCount)))

	forbidden := make(map[Cell]bool, e.snake.Len()+len(e.obstacles)+len(e.powerUps)+1)
	for _, c := range e.snake.Cells() {
		forbidden[c] = true
	}
	forbidden[e.food] = true
	for _, c := range e.obstacles {
		forbidden[c] = true
	}
	for i := range e.powerUps {
		forbidden[e.powerUps[i].Cell] = true
	}

	effectTicks := 0
	switch kind {
	case PowerSlow:
		effectTicks = e.cfg.SlowEffectTicks
	case PowerBoost:
		effectTicks = e.cfg.BoostEffectTicks
	}

	e.powerUps = append(e.powerUps, PowerUp{
		Cell:        PlaceRandom(e.rng, e.arena, forbidden),
		Kind:        kind,
		FieldTicks:  e.cfg.PowerUpFieldTicks,
		EffectTicks: effectTicks,
	})
}

// placeObstacles replaces the obstacle set for the current level. Count
// grows with the level up to the cap. Placement avoids the snake, the
// food and earlier obstacles of the same batch, one cell deeper inside
// than food may spawn. Cells occupied only by pickups are fair game.
func (e *Engine) placeObstacles() {
	count := e.level - 1
	if count > e.cfg.MaxObstacles {
		count = e.cfg.MaxObstacles
	}

	e.obstacles = e.obstacles[:0]
	e.obstacleSet = make(map[Cell]bool, count)

	forbidden := make(map[Cell]bool, e.snake.Len()+count+1)
	for _, c := range e.snake.Cells() {
		forbidden[c] = true
	}
	forbidden[e.food] = true

	inner := e.arena.Inset(1)
	for i := 0; i < count; i++ {
		c := PlaceRandom(e.rng, inner, forbidden)
		forbidden[c] = true
		e.obstacles = append(e.obstacles, c)
		e.obstacleSet[c] = true
	}
}

// EmitSparkle spawns a cosmetic sparkle burst at the head. The platform
// layer uses it to acknowledge purely visual actions such as a skin swap.
func (e *Engine) EmitSparkle() {
	e.particles.SpawnSparkle(e.snake.Head())
}

// Alive reports whether the run is still going.
func (e *Engine) Alive() bool {
	return e.alive
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Arena returns the playable interior bounds.
func (e *Engine) Arena() Arena {
	return e.arena
}

// TickDelay returns the effective delay until the next tick: the decayed
// base delay scaled by the active effect, if any.
func (e *Engine) TickDelay() time.Duration {
	d := float64(e.baseDelay)
	if e.effect != nil {
		switch e.effect.Kind {
		case PowerSlow:
			d *= e.cfg.SlowDelayFactor
		case PowerBoost:
			d *= e.cfg.BoostDelayFactor
		}
	}
	return time.Duration(d)
}

// BaseDelay returns the decayed base delay without effect scaling.
func (e *Engine) BaseDelay() time.Duration {
	return e.baseDelay
}

// Outcome builds the externally visible view of the current state. Used
// by Step and for the initial frame before the first tick.
func (e *Engine) Outcome() StepOutcome {
	out := StepOutcome{
		Tick:          e.tick,
		Alive:         e.alive,
		Snake:         make([]Cell, e.snake.Len()),
		Dir:           e.snake.Dir(),
		Food:          e.food,
		Score:         e.score,
		Level:         e.level,
		NextThreshold: e.nextThreshold,
		Delay:         e.TickDelay(),
		Particles:     e.particles.Particles(),
	}
	copy(out.Snake, e.snake.Cells())
	if len(e.obstacles) > 0 {
		out.Obstacles = make([]Cell, len(e.obstacles))
		copy(out.Obstacles, e.obstacles)
	}
	if len(e.powerUps) > 0 {
		out.PowerUps = make([]PowerUp, len(e.powerUps))
		copy(out.PowerUps, e.powerUps)
	}
	if e.effect != nil {
		ef := *e.effect
		out.Effect = &ef
	}
	if len(e.events) > 0 {
		out.Events = make([]Event, len(e.events))
		copy(out.Events, e.events)
	}
	return out
}
