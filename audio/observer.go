package audio

import (
	"github.com/lixenwraith/kickball/event"
)

// Player is the effect surface driven by game events
type Player interface {
	PlayKick(score int)
	PlayGameOver()
	PlayReady()
}

// Observer maps game notifications to effects
type Observer struct {
	player Player
}

func NewObserver(p Player) *Observer {
	return &Observer{player: p}
}

// Events lists the notifications Observer reacts to, for Router.Subscribe
func (o *Observer) Events() []event.EventType {
	return []event.EventType{event.EventScoreChanged, event.EventGameOver, event.EventGameReset}
}

// OnEvent implements event.Observer
// A score of zero is the reset broadcast, not a kick
func (o *Observer) OnEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventScoreChanged:
		if p, ok := ev.Payload.(*event.ScorePayload); ok && p.Score > 0 {
			o.player.PlayKick(p.Score)
		}
	case event.EventGameOver:
		o.player.PlayGameOver()
	case event.EventGameReset:
		o.player.PlayReady()
	}
}
