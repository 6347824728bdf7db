package network

import (
	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/protocol"
)

// BridgeElevator forwards tilt requests to the attached bridge's sensor motor
type BridgeElevator struct {
	server *Server
}

var _ engine.Elevator = (*BridgeElevator)(nil)

func NewBridgeElevator(s *Server) *BridgeElevator {
	return &BridgeElevator{server: s}
}

// SetElevation returns engine.ErrElevatorNotReady while no bridge is attached
func (e *BridgeElevator) SetElevation(angle int) error {
	return e.server.Send(protocol.MsgTilt, protocol.TiltCommand{Angle: angle})
}
