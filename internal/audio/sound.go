// Package audio plays the game's sound cues through the system speaker.
// Every sound is synthesised, so no sample files ship with the binary.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

const sampleRate = beep.SampleRate(44100)

// Cue durations
const (
	jumpDuration  = 90 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	hitDuration   = 250 * time.Millisecond
	bufferLatency = 100 * time.Millisecond
)

// SoundManager mixes cue sounds into a single speaker stream.
// All methods are safe for concurrent use and are no-ops until Initialize
// succeeds, so the game runs unchanged without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with the given master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLatency)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close silences everything still playing.
func (sm *SoundManager) Close() {
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

// PlayCues plays the sound of every cue of one frame.
func (sm *SoundManager) PlayCues(cues []flappy.Cue) {
	for _, c := range cues {
		sm.Play(c)
	}
}

// Play starts the sound for a single cue.
func (sm *SoundManager) Play(c flappy.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CueStreamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// CueStreamer returns a finite stream for the cue, or nil if it has no sound.
func CueStreamer(c flappy.Cue) beep.Streamer {
	switch c {
	case flappy.CueJump:
		return beep.Take(sampleRate.N(jumpDuration), NewSweepGenerator(sampleRate, 420, 880, jumpDuration))
	case flappy.CueScore:
		return beep.Seq(
			beep.Take(sampleRate.N(scoreNote), NewToneGenerator(sampleRate, 988)),
			beep.Take(sampleRate.N(2*scoreNote), NewToneGenerator(sampleRate, 1319)),
		)
	case flappy.CueHit:
		return beep.Take(sampleRate.N(hitDuration), NewThudGenerator(sampleRate))
	}
	return nil
}

// withVolume scales a stream linearly; zero mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
