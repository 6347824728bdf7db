package network

import (
	"time"

	"github.com/lixenwraith/kickball/parameter"
)

// Config holds bridge server configuration
type Config struct {
	// Address to bind
	Address string

	// Largest accepted bridge message
	ReadLimit int64

	// Timing
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PingInterval time.Duration

	// Outbound messages buffered per bridge before Send reports failure
	SendQueueSize int
}

// DefaultConfig returns loopback defaults
func DefaultConfig() *Config {
	return &Config{
		Address:       parameter.DefaultListenAddr,
		ReadLimit:     parameter.BridgeReadLimit,
		ReadTimeout:   parameter.BridgeReadTimeout,
		WriteTimeout:  parameter.BridgeWriteTimeout,
		PingInterval:  parameter.BridgePingInterval,
		SendQueueSize: 16,
	}
}
