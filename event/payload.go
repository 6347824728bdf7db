package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/kickball/core"
)

// SkeletonFramePayload is the joint extracted from the first tracked skeleton of a sensor frame
type SkeletonFramePayload struct {
	Joint core.Joint
}

// TiltPayload carries an elevation angle in degrees
type TiltPayload struct {
	Angle int
}

// DeviceStatusPayload is the sensor state as reported by the tracker bridge
type DeviceStatusPayload struct {
	Connected bool
	Message   string
}

// ScorePayload carries the score after the change
type ScorePayload struct {
	Score int
}

// StatusPayload is a status line for display
type StatusPayload struct {
	Message string
}

// ResetPayload identifies the new game
type ResetPayload struct {
	Session uuid.UUID
}
