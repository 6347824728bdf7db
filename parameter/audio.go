package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
	AudioBuffer     = 100 * time.Millisecond
)

// Kick blip: pitch climbs a semitone per point, capped
const (
	KickBaseFreq     = 440.0
	KickMaxSemitones = 24
	KickDuration     = 90 * time.Millisecond
	KickVolume       = 0.25
)

// Game over: falling sweep
const (
	GameOverStartFreq = 392.0
	GameOverEndFreq   = 98.0
	GameOverDuration  = 600 * time.Millisecond
	GameOverVolume    = 0.3
)

// Ready chirp after reset
const (
	ReadyFreq     = 660.0
	ReadyDuration = 60 * time.Millisecond
	ReadyVolume   = 0.2
)
