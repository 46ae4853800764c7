package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	if osc == nil {
		t.Fatal("Expected non-nil oscillator")
	}

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

// TestOscillatorSquare verifies square wave values are exactly +-1
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorFinite verifies the stream ends after its duration
func TestOscillatorFinite(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 10*time.Millisecond, WaveSaw, rate)

	// 10ms at 1000Hz is 10 samples
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)

	if n != 10 {
		t.Errorf("Expected 10 samples before exhaustion, got %d", n)
	}
	if ok {
		t.Error("Expected ok=false after the oscillator is drained")
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained stream to return (0, false), got (%d, %v)", n, ok)
	}
}

// TestEnvelopeAttack verifies the attack ramp starts near zero
func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0.0, duration, WaveSquare, rate) // constant 1.0 at phase 0
	env := NewEnvelope(osc, duration, 50*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, ok := env.Stream(samples)

	if !ok || n != 200 {
		t.Fatalf("Expected 200 samples with ok=true, got (%d, %v)", n, ok)
	}

	// First sample is at the bottom of the ramp
	if samples[0][0] > 0.01 {
		t.Errorf("Expected attacked first sample near 0, got %f", samples[0][0])
	}

	// Amplitude should be non-decreasing through the attack
	for i := 1; i < n; i++ {
		if samples[i][0] < samples[i-1][0]-1e-9 {
			t.Errorf("Attack ramp decreased at sample %d: %f -> %f", i, samples[i-1][0], samples[i][0])
		}
	}
}

// TestEnvelopeRelease verifies the tail fades toward zero
func TestEnvelopeRelease(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	osc := NewOscillator(0.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 0, 50*time.Millisecond, rate)

	// Drain the whole 100 samples
	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[40][0] != 1.0 {
		t.Errorf("Expected full amplitude before release, got %f", samples[40][0])
	}
	if samples[99][0] > 0.05 {
		t.Errorf("Expected last sample near 0, got %f", samples[99][0])
	}
	if samples[99][0] >= samples[60][0] {
		t.Errorf("Expected release to fade: sample 99 (%f) not below sample 60 (%f)", samples[99][0], samples[60][0])
	}
}

// TestMakeCueAll verifies every cue builds a streamer
func TestMakeCueAll(t *testing.T) {
	rate := beep.SampleRate(44100)

	cues := []CueType{CueBlip, CueBump, CueWin}
	for _, cue := range cues {
		s := makeCue(cue, rate, 1.0)
		if s == nil {
			t.Errorf("Expected non-nil streamer for cue %d", cue)
			continue
		}

		samples := make([][2]float64, 64)
		n, _ := s.Stream(samples)
		if n == 0 {
			t.Errorf("Expected cue %d to produce samples", cue)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("Cue %d sample %d out of range: %f", cue, i, samples[i][0])
				break
			}
		}
	}
}

// TestMakeCueUnknown verifies an unknown cue returns nil
func TestMakeCueUnknown(t *testing.T) {
	if s := makeCue(CueType(200), beep.SampleRate(44100), 1.0); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestZeroVolumeSilent verifies zero volume produces silence
func TestZeroVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, rate)
	s := newVolume(osc, 0)

	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)

	for i := 0; i < n; i++ {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Errorf("Expected silence at sample %d, got (%f, %f)", i, samples[i][0], samples[i][1])
			break
		}
	}
}

// TestEngineMute verifies mute toggling
func TestEngineMute(t *testing.T) {
	e := NewEngine()

	if e.Muted() {
		t.Error("Expected new engine to be unmuted")
	}

	e.SetMuted(true)
	if !e.Muted() {
		t.Error("Expected engine to be muted after SetMuted(true)")
	}

	e.SetMuted(false)
	if e.Muted() {
		t.Error("Expected engine to be unmuted after SetMuted(false)")
	}

	// Play before Start is a no-op, must not panic
	e.Play(CueBlip)
}
