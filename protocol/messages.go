package protocol

import (
	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/tracking"
)

// Hello announces a bridge
type Hello struct {
	V    int    `json:"v"`
	Name string `json:"name,omitempty"`
}

// JointData is one camera-space joint position in metres
type JointData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SkeletonData is one detected body
// State is "tracked", "position_only" or "not_tracked"; joints are keyed by joint name
type SkeletonData struct {
	ID     int                  `json:"id"`
	State  string               `json:"state"`
	Joints map[string]JointData `json:"joints,omitempty"`
}

// SkeletonFrame is one sensor frame holding up to six bodies
type SkeletonFrame struct {
	Frame     int64          `json:"frame"`
	Skeletons []SkeletonData `json:"skeletons"`
}

// DeviceStatus reports sensor availability changes seen by the bridge
type DeviceStatus struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message,omitempty"`
}

// TiltCommand asks the bridge to move the sensor elevation motor
type TiltCommand struct {
	Angle int `json:"angle"`
}

// Point is a resolved image-space position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// State is the read-only game view served over HTTP
type State struct {
	Frame   int64            `json:"frame"`
	Session string           `json:"session"`
	Ball    Point            `json:"ball"`
	Vel     Point            `json:"vel"`
	Score   int              `json:"score"`
	Phase   string           `json:"phase"`
	Foot    *Point           `json:"foot,omitempty"`
	Tilt    int              `json:"tilt"`
	Status  string           `json:"status"`
	Stats   map[string]int64 `json:"stats,omitempty"`
}

const (
	StateTracked      = "tracked"
	StatePositionOnly = "position_only"
	StateNotTracked   = "not_tracked"
)

// ParseTrackingState maps a wire state name, unknown names are not tracked
func ParseTrackingState(s string) tracking.TrackingState {
	switch s {
	case StateTracked:
		return tracking.Tracked
	case StatePositionOnly:
		return tracking.PositionOnly
	default:
		return tracking.NotTracked
	}
}

// ToSkeletons converts a wire frame, silently dropping joints with unknown names
func (f SkeletonFrame) ToSkeletons() []tracking.Skeleton {
	out := make([]tracking.Skeleton, 0, len(f.Skeletons))
	for _, sd := range f.Skeletons {
		sk := tracking.Skeleton{
			ID:     sd.ID,
			State:  ParseTrackingState(sd.State),
			Joints: make(map[tracking.JointType]core.Joint, len(sd.Joints)),
		}
		for name, jd := range sd.Joints {
			jt, err := tracking.ParseJointType(name)
			if err != nil {
				continue
			}
			sk.Joints[jt] = core.Joint{X: jd.X, Y: jd.Y, Z: jd.Z}
		}
		out = append(out, sk)
	}
	return out
}

// StateFromSnapshot builds the HTTP view of a snapshot
func StateFromSnapshot(s engine.Snapshot, stats map[string]int64) State {
	st := State{
		Frame:   s.Frame,
		Session: s.Session.String(),
		Ball:    Point{X: s.Ball.Pos.X, Y: s.Ball.Pos.Y},
		Vel:     Point{X: s.Ball.Vel.X, Y: s.Ball.Vel.Y},
		Score:   s.Score,
		Phase:   s.Phase.String(),
		Tilt:    s.Tilt,
		Status:  s.Status,
		Stats:   stats,
	}
	if s.Foot.Ok {
		st.Foot = &Point{X: s.Foot.Point.X, Y: s.Foot.Point.Y}
	}
	return st
}
