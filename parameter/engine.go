package parameter

import "time"

// Game Loop & Display Timing
const (
	// FrameUpdateInterval is the display refresh interval, independent of sensor frame rate
	FrameUpdateInterval = 30 * time.Millisecond

	// LoopIdleInterval is how often the update loop wakes with no producer signal
	LoopIdleInterval = 50 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the skeleton frame ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// ControlQueueSize buffers reset, tilt and device commands; producers wait when it is full
	ControlQueueSize = 64
)

// Status messages published by the game state machine
const (
	StatusReady    = "ready to play"
	StatusGameOver = "game over"
)
