package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cyber-snake/internal/engine"
)

// constSource feeds a constant amplitude, used to observe envelopes
// directly.
type constSource struct{ val float64 }

func (c constSource) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = c.val
		samples[i][1] = c.val
	}
	return len(samples), true
}

func (c constSource) Err() error { return nil }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestOscillatorSampleRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, rate)

	samples := make([][2]float64, expected*2)
	n, ok := osc.Stream(samples)

	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}
	if !ok {
		t.Error("Partial fill should still report ok=true")
	}

	n2, ok2 := osc.Stream(samples[:10])
	if ok2 || n2 != 0 {
		t.Errorf("Drained oscillator returned (%d, %v), want (0, false)", n2, ok2)
	}
}

func TestSweepFrequencyRises(t *testing.T) {
	rate := beep.SampleRate(22050)
	duration := 150 * time.Millisecond
	sw := NewSweep(600, 1000, duration, rate)

	total := rate.N(duration)
	samples := make([][2]float64, total)
	n, _ := sw.Stream(samples)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	// A rising sweep crosses zero more often near the end.
	crossings := func(from, to int) int {
		count := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				count++
			}
		}
		return count
	}
	quarter := total / 4
	early := crossings(0, quarter)
	late := crossings(total-quarter, total)

	if late <= early {
		t.Errorf("Expected later zero crossings to outnumber earlier ones, got %d vs %d", late, early)
	}
}

func TestFadeShapesDecay(t *testing.T) {
	rate := beep.SampleRate(22050)
	duration := 50 * time.Millisecond
	total := rate.N(duration)

	shapes := []struct {
		name  string
		shape FadeShape
	}{
		{"linear", FadeLinear},
		{"root", FadeRoot},
		{"quadratic", FadeQuadratic},
	}
	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFade(constSource{val: 1.0}, duration, tt.shape, rate)

			samples := make([][2]float64, total)
			n, _ := f.Stream(samples)
			if n != total {
				t.Fatalf("Expected %d samples, got %d", total, n)
			}

			// Envelope equals the samples on a constant source.
			if samples[0][0] < 0.99 {
				t.Errorf("Fade should start near full volume, got %f", samples[0][0])
			}
			if last := samples[n-1][0]; last > 0.01 {
				t.Errorf("Fade should end near silence, got %f", last)
			}
			for i := 1; i < n; i++ {
				if samples[i][0] > samples[i-1][0]+1e-9 {
					t.Fatalf("Envelope rose at sample %d: %f > %f", i, samples[i][0], samples[i-1][0])
				}
			}
		})
	}
}

func TestCueSoundsProduceSamples(t *testing.T) {
	cues := []struct {
		name string
		cue  Cue
	}{
		{"eat", CueEat},
		{"powerup", CuePowerUp},
		{"collision", CueCollision},
		{"levelup", CueLevelUp},
	}
	for _, tt := range cues {
		t.Run(tt.name, func(t *testing.T) {
			sound := CreateCueSound(tt.cue, sampleRate)
			if sound == nil {
				t.Fatal("Expected non-nil cue sound")
			}

			samples := make([][2]float64, 500)
			n, ok := sound.Stream(samples)
			if !ok {
				t.Error("Expected cue sound to stream successfully")
			}
			if n == 0 {
				t.Error("Expected cue sound to produce samples")
			}

			heard := false
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
				}
				if abs(samples[i][0]) > 0.001 {
					heard = true
				}
			}
			if !heard {
				t.Error("Expected audible samples, got silence")
			}
		})
	}
}

func TestCueSoundUnknown(t *testing.T) {
	if sound := CreateCueSound(Cue(999), sampleRate); sound != nil {
		t.Error("Expected nil for unknown cue")
	}
}

func TestCollisionMixStaysInRange(t *testing.T) {
	sound := CreateCollisionSound(sampleRate)

	total := sampleRate.N(200 * time.Millisecond)
	samples := make([][2]float64, total)
	n, _ := sound.Stream(samples)

	for i := 0; i < n; i++ {
		if abs(samples[i][0]) > 1.0 {
			t.Fatalf("Mixed sample %d clips: %f", i, samples[i][0])
		}
	}
}

func TestCueForEventMapping(t *testing.T) {
	tests := []struct {
		kind engine.EventKind
		want Cue
	}{
		{engine.EventEat, CueEat},
		{engine.EventPowerUp, CuePowerUp},
		{engine.EventLevelUp, CueLevelUp},
		{engine.EventTrap, CueCollision},
		{engine.EventCollision, CueCollision},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := CueFor(tt.kind); got != tt.want {
				t.Errorf("CueFor(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestUninitializedPlayerIsSilentNoop(t *testing.T) {
	p := NewPlayer(true)

	// Init never ran, playing must not panic or touch the speaker.
	p.Play(engine.Event{Kind: engine.EventEat})
	p.PlayAll([]engine.Event{
		{Kind: engine.EventPowerUp, Power: engine.PowerSlow},
		{Kind: engine.EventLevelUp},
	})
	p.Close()
}

func TestPlayerToggle(t *testing.T) {
	p := NewPlayer(true)

	if !p.Enabled() {
		t.Fatal("Player should start enabled")
	}
	if on := p.Toggle(); on {
		t.Error("First toggle should mute")
	}
	if p.Enabled() {
		t.Error("Player should be muted after toggle")
	}
	if on := p.Toggle(); !on {
		t.Error("Second toggle should unmute")
	}

	p.SetEnabled(false)
	if p.Enabled() {
		t.Error("SetEnabled(false) should mute")
	}
}
