package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cyber-snake/internal/engine"
)

// Player owns the speaker and plays cues for engine events. A player
// that never initialized, or is muted, swallows Play calls silently so
// callers never branch on audio availability.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
}

// NewPlayer creates a player. Call Init before playing; a failed or
// skipped Init leaves the player as a no-op.
func NewPlayer(enabled bool) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Init opens the speaker and attaches the mixer. Safe to call once;
// repeated calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself has no close, clearing
// the streamers is all beep offers.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetEnabled mutes or unmutes the player.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Toggle flips the mute state and returns the new one.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Enabled reports whether the player is unmuted.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue for an engine event.
func (p *Player) Play(ev engine.Event) {
	p.play(CueFor(ev.Kind))
}

// PlayAll queues cues for every event of a tick in order.
func (p *Player) PlayAll(events []engine.Event) {
	for _, ev := range events {
		p.Play(ev)
	}
}

func (p *Player) play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}

	streamer := CreateCueSound(cue, sampleRate)
	if streamer == nil {
		return
	}

	// The speaker streams from the mixer concurrently, mutations need
	// its lock.
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// CueFor maps an engine event kind to its sound. Traps share the
// crash sound with collisions.
func CueFor(kind engine.EventKind) Cue {
	switch kind {
	case engine.EventEat:
		return CueEat
	case engine.EventPowerUp:
		return CuePowerUp
	case engine.EventLevelUp:
		return CueLevelUp
	case engine.EventTrap, engine.EventCollision:
		return CueCollision
	default:
		return Cue(-1)
	}
}
