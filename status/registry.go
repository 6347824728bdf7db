package status

import "sync/atomic"

// Counter keys shared by producers and the status bar
const (
	FramesTracked    = "frames.tracked"
	FramesUntracked  = "frames.untracked"
	FramesUnresolved = "frames.unresolved"
	FramesDropped    = "frames.dropped"
	Kicks            = "kicks"
	TiltRejected     = "tilt.rejected"
	BridgeConnected  = "bridge.connected"
	BridgeName       = "bridge.name"
)

// Registry is the central metrics facade
// Producers cache pointers during init and write atomics from any goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// IntSnapshot returns a point-in-time copy of every integer counter
func (r *Registry) IntSnapshot() map[string]int64 {
	return Snapshot(r.Ints, (*atomic.Int64).Load)
}
