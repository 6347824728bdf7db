package tracking

import "github.com/lixenwraith/kickball/core"

// TrackingState is the per-skeleton tracking quality reported by the sensor
type TrackingState uint8

const (
	NotTracked TrackingState = iota
	PositionOnly
	Tracked
)

// Skeleton is one detected person in a sensor frame
// Joints the sensor did not report are absent from the map
type Skeleton struct {
	ID     int
	State  TrackingState
	Joints map[JointType]core.Joint
}

// FirstTracked returns the first fully tracked skeleton, if any
func FirstTracked(skeletons []Skeleton) (*Skeleton, bool) {
	for i := range skeletons {
		if skeletons[i].State == Tracked {
			return &skeletons[i], true
		}
	}
	return nil, false
}
