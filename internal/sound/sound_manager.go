package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	bumpDuration  = 120 * time.Millisecond
	bumpFrequency = 90.0
)

// SoundManager plays the renderer's feedback sounds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // In halvings of amplitude, 0 is unchanged
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds will be heard
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayBump plays a short thud for movement into a wall
func (sm *SoundManager) PlayBump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(bumpDuration), NewThudGenerator(sampleRate, bumpFrequency)),
		Base:     2,
		Volume:   sm.volume,
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ThudGenerator is a low sine with a fast attack and exponential decay
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThudGenerator creates a thud sound generator
func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops slightly as the thud dies out
		freq := g.freq * (1 - 0.3*math.Min(t/bumpDuration.Seconds(), 1))
		sample := 0.6*math.Sin(2*math.Pi*freq*t) + 0.2*math.Sin(2*math.Pi*freq*2*t)

		attack := math.Min(t/0.005, 1)
		decay := math.Exp(-t * 30)
		sample *= attack * decay * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
