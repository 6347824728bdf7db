package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundKick     SoundType = iota // Foot contact, pitch rises with score
	SoundGameOver                  // Ball hit the floor
	SoundReady                     // Game reset
	SoundTypeCount
)
