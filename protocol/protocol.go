package protocol

import "encoding/json"

// Message types carried in Envelope.T
const (
	MsgHello     = "hello"     // bridge -> game
	MsgSkeletons = "skeletons" // bridge -> game
	MsgDevice    = "device"    // bridge -> game
	MsgTilt      = "tilt"      // game -> bridge
	MsgState     = "state"     // game -> http
)

// Envelope is the framing shared by every message on the bridge socket
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}
