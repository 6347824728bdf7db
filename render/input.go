package render

import "github.com/gdamore/tcell/v2"

// Action is what a terminal event asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionTiltUp
	ActionTiltDown
	ActionRedraw
)

// ActionFor translates a polled tcell event
func ActionFor(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyUp:
			return ActionTiltUp
		case tcell.KeyDown:
			return ActionTiltDown
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ActionQuit
			case 'r', 'R':
				return ActionReset
			case '+', 'k':
				return ActionTiltUp
			case '-', 'j':
				return ActionTiltDown
			}
		}
	case *tcell.EventResize:
		return ActionRedraw
	}
	return ActionNone
}
