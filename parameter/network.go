package parameter

import "time"

// Tracker bridge socket
const (
	DefaultListenAddr = "127.0.0.1:8088"

	BridgeReadLimit    = 1 << 20
	BridgeReadTimeout  = 60 * time.Second
	BridgeWriteTimeout = 10 * time.Second
	BridgePingInterval = 25 * time.Second

	ProtocolVersion = 1
)
