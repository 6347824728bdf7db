package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/vmath"
)

// 64x50 leaves a 64x48 field, ten image pixels per cell
func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen, *status.Registry) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(64, 50)

	reg := status.NewRegistry()
	return NewRenderer(screen, TrueColorPalette(), reg, parameter.DefaultTuning()), screen, reg
}

func playingSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Ball:   core.NewBall(vmath.V(320, 100)),
		Score:  3,
		Phase:  core.PhasePlaying,
		Foot:   core.Resolve(100, 300),
		Tilt:   -5,
		Status: parameter.StatusReady,
	}
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestRendererDrawsBallAndGuide(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	r.Draw(playingSnapshot())

	bg := tcell.StyleDefault.Background(RgbBackground)

	x, y := r.CellOf(vmath.V(320, 100))
	assert.Equal(t, 32, x)
	assert.Equal(t, 10, y)
	ch, _, style, _ := screen.GetContent(x, y)
	assert.Equal(t, ballRune, ch)
	assert.Equal(t, bg.Foreground(RgbBall), style)

	// 80px ball spans eight cells across
	ch, _, _, _ = screen.GetContent(x-3, y)
	assert.Equal(t, ballRune, ch)
	ch, _, _, _ = screen.GetContent(x-5, y)
	assert.Equal(t, ' ', ch)

	ch, _, style, _ = screen.GetContent(10, 30)
	assert.Equal(t, guideRune, ch)
	assert.Equal(t, bg.Foreground(RgbFootGuide), style)

	ch, _, _, _ = screen.GetContent(0, 47)
	assert.Equal(t, floorRune, ch)
}

func TestRendererNoGuideWhenUnresolved(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	s := playingSnapshot()
	s.Foot = core.Unresolved
	r.Draw(s)

	for y := 0; y < 47; y++ {
		assert.NotContains(t, rowText(screen, y), string(guideRune))
	}
}

func TestRendererStatusBar(t *testing.T) {
	r, screen, reg := newTestRenderer(t)
	reg.Ints.Get(status.Kicks).Store(3)
	reg.Bools.Get(status.BridgeConnected).Store(true)
	reg.Strings.Get(status.BridgeName).Store("kinect-0")

	r.Draw(playingSnapshot())

	bar := rowText(screen, 48)
	assert.Contains(t, bar, "Score: 3")
	assert.Contains(t, bar, "Tilt: -5°")
	assert.Contains(t, bar, "Status: "+parameter.StatusReady)

	counters := rowText(screen, 49)
	assert.Contains(t, counters, "kicks 3")
	assert.Contains(t, counters, "bridge kinect-0")
}

func TestRendererGameOverBanner(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	s := playingSnapshot()
	s.Phase = core.PhaseGameOver
	s.Status = parameter.StatusGameOver
	r.Draw(s)

	assert.Contains(t, rowText(screen, 24), "GAME OVER")
}

func TestRendererTinyScreen(t *testing.T) {
	r, screen, _ := newTestRenderer(t)
	screen.SetSize(10, 2)
	assert.NotPanics(t, func() { r.Draw(playingSnapshot()) })

	screen.SetSize(3, 4)
	assert.NotPanics(t, func() { r.Draw(playingSnapshot()) })
}

func TestPaletteFor(t *testing.T) {
	p, err := PaletteFor("basic")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorRed, p.Ball)

	p, err = PaletteFor("")
	require.NoError(t, err)
	assert.Equal(t, RgbFootGuide, p.FootGuide)

	_, err = PaletteFor("sepia")
	assert.Error(t, err)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionReset},
		{"R", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), ActionReset},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionTiltUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionTiltDown},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"resize", tcell.NewEventResize(80, 24), ActionRedraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFor(tt.ev))
		})
	}
}
