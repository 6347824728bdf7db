package event

import (
	"sync/atomic"

	"github.com/lixenwraith/kickball/parameter"
)

// EventQueue is a bounded lock-free MPSC ring for high-rate inbound events (skeleton frames)
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (update loop)
//   - Published flags keep the consumer off slots still being written
//
// Overflow: a full queue refuses the incoming event; queued events are never overwritten
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index, advanced only by the consumer
	tail      atomic.Uint64 // Write reservation index
	dropped   *atomic.Int64
}

// NewEventQueue creates an empty queue; refused pushes are counted in dropped when non-nil
func NewEventQueue(dropped *atomic.Int64) *EventQueue {
	if dropped == nil {
		dropped = new(atomic.Int64)
	}
	return &EventQueue{dropped: dropped}
}

// Push reserves a slot and writes ev, returns false when the queue is full
func (eq *EventQueue) Push(ev GameEvent) bool {
	for {
		tail := eq.tail.Load()
		// A stale head only overstates occupancy, so the check stays safe under contention
		if tail-eq.head.Load() >= parameter.EventQueueSize {
			eq.dropped.Add(1)
			return false
		}
		if eq.tail.CompareAndSwap(tail, tail+1) {
			idx := tail & parameter.EventBufferMask
			eq.events[idx] = ev
			eq.published[idx].Store(true) // MUST be after write
			return true
		}
	}
}

// Consume returns every fully written event in FIFO order
// Stops at the first slot whose producer has not finished; the rest arrive on the next call
func (eq *EventQueue) Consume() []GameEvent {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail == head {
		return nil
	}

	var result []GameEvent
	for i := head; i < tail; i++ {
		idx := i & parameter.EventBufferMask
		if !eq.published[idx].Load() {
			break
		}
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
		eq.published[idx].Store(false)
	}
	eq.head.Store(head + uint64(len(result)))
	return result
}

// Len returns the approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Dropped returns how many pushes were refused
func (eq *EventQueue) Dropped() int64 {
	return eq.dropped.Load()
}
