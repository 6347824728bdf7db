package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/protocol"
)

func TestStateURLFor(t *testing.T) {
	got, err := stateURLFor("ws://127.0.0.1:8088/ws")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8088/state", got)

	got, err = stateURLFor("wss://example.test/game/ws")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/game/state", got)

	_, err = stateURLFor("tcp://host/ws")
	assert.Error(t, err)
}

func TestPlayerStrikesDescendingBall(t *testing.T) {
	p := newPlayer(rand.New(rand.NewSource(1)), 0)
	st := protocol.State{Ball: protocol.Point{X: 300, Y: 350}, Vel: protocol.Point{Y: 4}}

	foot := p.footFor(st)
	assert.InDelta(t, 370, foot.Y, 1e-9)
	assert.InDelta(t, 300, foot.X, jitter)

	// Contact stays within reach of the ball
	dx, dy := foot.X-st.Ball.X, foot.Y-st.Ball.Y
	assert.Less(t, dx*dx+dy*dy, parameter.ContactRadius*parameter.ContactRadius)
}

func TestPlayerRestsWhileRising(t *testing.T) {
	p := newPlayer(rand.New(rand.NewSource(1)), 0)
	foot := p.footFor(protocol.State{Ball: protocol.Point{X: 100, Y: 350}, Vel: protocol.Point{Y: -6}})
	assert.InDelta(t, restY, foot.Y, 1e-9)
	assert.InDelta(t, 100, foot.X, 1e-9)
}

func TestPlayerMissesWholeRally(t *testing.T) {
	p := newPlayer(rand.New(rand.NewSource(1)), 1)
	st := protocol.State{Ball: protocol.Point{X: 600, Y: 400}, Vel: protocol.Point{Y: 3}}
	for i := 0; i < 3; i++ {
		assert.InDelta(t, restY, p.footFor(st).Y, 1e-9)
	}
}
