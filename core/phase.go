package core

// Phase is the game state machine state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

var phaseNames = [...]string{
	PhasePlaying:  "playing",
	PhaseGameOver: "game over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Terminal reports whether no further physics or scoring can happen until reset
func (p Phase) Terminal() bool {
	return p == PhaseGameOver
}
