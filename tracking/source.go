package tracking

import (
	"sync/atomic"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/status"
)

// FrameSink receives the forward-foot joint of each frame that had a tracked skeleton
// Called from the producer goroutine; implementations hand off to the update owner
type FrameSink interface {
	SubmitJoint(j core.Joint)
}

// Source extracts one designated joint per sensor frame
type Source struct {
	joint JointType
	sink  FrameSink

	tracked   *atomic.Int64
	untracked *atomic.Int64
}

// NewSource creates a source forwarding joint to sink
func NewSource(joint JointType, sink FrameSink, reg *status.Registry) *Source {
	return &Source{
		joint:     joint,
		sink:      sink,
		tracked:   reg.Ints.Get(status.FramesTracked),
		untracked: reg.Ints.Get(status.FramesUntracked),
	}
}

// Joint returns the designated joint type
func (s *Source) Joint() JointType {
	return s.joint
}

// HandleFrame forwards the designated joint of the first tracked skeleton
// Returns false when the frame carried nothing usable, which is routine
func (s *Source) HandleFrame(skeletons []Skeleton) bool {
	skel, ok := FirstTracked(skeletons)
	if !ok {
		s.untracked.Add(1)
		return false
	}
	j, ok := skel.Joints[s.joint]
	if !ok {
		s.untracked.Add(1)
		return false
	}
	s.tracked.Add(1)
	s.sink.SubmitJoint(j)
	return true
}
