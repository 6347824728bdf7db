package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickball/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue(nil)
	assert.Nil(t, q.Consume())

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventSkeletonFrame, Frame: int64(i)})
	}
	assert.Equal(t, 5, q.Len())

	events := q.Consume()
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, int64(i), ev.Frame)
	}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Consume())
}

func TestEventQueueFullRefusesNewest(t *testing.T) {
	var dropped atomic.Int64
	q := NewEventQueue(&dropped)
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		ok := q.Push(GameEvent{Type: EventSkeletonFrame, Frame: int64(i)})
		assert.Equal(t, i < parameter.EventQueueSize, ok, "push %d", i)
	}

	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, int64(10), q.Dropped())
	assert.Equal(t, int64(10), dropped.Load())

	events := q.Consume()
	require.Len(t, events, parameter.EventQueueSize)
	assert.Equal(t, int64(0), events[0].Frame)
	assert.Equal(t, int64(parameter.EventQueueSize-1), events[len(events)-1].Frame)

	// Space is reclaimed after a drain
	assert.True(t, q.Push(GameEvent{Type: EventSkeletonFrame, Frame: 999}))
	events = q.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, int64(999), events[0].Frame)
}

func TestEventQueueWrapsAround(t *testing.T) {
	q := NewEventQueue(nil)
	for round := 0; round < 3; round++ {
		for i := 0; i < parameter.EventQueueSize-1; i++ {
			require.True(t, q.Push(GameEvent{Frame: int64(i)}))
		}
		events := q.Consume()
		require.Len(t, events, parameter.EventQueueSize-1)
		assert.Equal(t, int64(parameter.EventQueueSize-2), events[len(events)-1].Frame)
	}
	assert.Zero(t, q.Dropped())
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue(nil)
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventSkeletonFrame, Frame: int64(p*perProducer + i)})
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, ev := range q.Consume() {
		seen[ev.Frame] = true
	}
	assert.Len(t, seen, producers*perProducer)
}
