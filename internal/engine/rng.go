package engine

// Rand supplies the random draws the engine needs. *math/rand.Rand
// satisfies it; tests substitute scripted implementations.
type Rand interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float64 in [0, 1).
	Float64() float64
}

// SimpleRNG is a small deterministic LCG used for cosmetic draws (particle
// tints and jitter). It is a separate stream from the gameplay RNG so that
// spawning or skipping visual effects never shifts placement rolls.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}
