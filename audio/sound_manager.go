package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays the game's one-shot effects through a shared mixer
// Every Play call is a no-op until Initialize succeeds, so the game runs on machines without audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the output device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBuffer)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted silences future effects without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayKick plays the contact blip for the given new score
func (sm *SoundManager) PlayKick(score int) {
	sm.play(newEffect(core.SoundKick, score))
}

// PlayGameOver plays the falling sweep
func (sm *SoundManager) PlayGameOver() {
	sm.play(newEffect(core.SoundGameOver, 0))
}

// PlayReady plays the reset chirp
func (sm *SoundManager) PlayReady() {
	sm.play(newEffect(core.SoundReady, 0))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || s == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// newEffect builds the finite streamer for st, score only affects kicks
func newEffect(st core.SoundType, score int) beep.Streamer {
	switch st {
	case core.SoundKick:
		freq := KickFrequency(score, parameter.KickBaseFreq, parameter.KickMaxSemitones)
		return NewToneGenerator(sampleRate, freq, parameter.KickDuration, parameter.KickVolume)
	case core.SoundGameOver:
		return NewSweepGenerator(sampleRate, parameter.GameOverStartFreq, parameter.GameOverEndFreq,
			parameter.GameOverDuration, parameter.GameOverVolume)
	case core.SoundReady:
		return NewToneGenerator(sampleRate, parameter.ReadyFreq, parameter.ReadyDuration, parameter.ReadyVolume)
	default:
		return nil
	}
}
