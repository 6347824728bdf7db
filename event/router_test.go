package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterOrderAndFilter(t *testing.T) {
	r := NewRouter()
	var got []string

	r.Subscribe(ObserverFunc(func(ev GameEvent) { got = append(got, "all:"+ev.Type.String()) }))
	r.Subscribe(ObserverFunc(func(ev GameEvent) { got = append(got, "score:"+ev.Type.String()) }), EventScoreChanged)
	r.Subscribe(ObserverFunc(func(ev GameEvent) { got = append(got, "over:"+ev.Type.String()) }), EventGameOver, EventGameReset)

	r.Publish(GameEvent{Type: EventScoreChanged, Payload: &ScorePayload{Score: 1}})
	r.Publish(GameEvent{Type: EventGameOver})
	r.Publish(GameEvent{Type: EventStatusChanged})

	assert.Equal(t, []string{
		"all:ScoreChanged",
		"score:ScoreChanged",
		"all:GameOver",
		"over:GameOver",
		"all:StatusChanged",
	}, got)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "TiltChanged", EventTiltChanged.String())
	assert.Equal(t, "SkeletonFrame", EventSkeletonFrame.String())
	assert.Equal(t, "Unknown", EventType(0).String())
}
