package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kickball/engine"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/vmath"
)

const (
	statusRows = 2

	ballRune  = '█'
	guideRune = '▓'
	floorRune = '─'
)

// Renderer draws snapshots of the playing field to a terminal
// The 640x480 image space is stretched over the screen above a two-row status bar
type Renderer struct {
	screen  tcell.Screen
	palette Palette
	reg     *status.Registry

	frameW float64
	frameH float64
	floor  float64

	// Layout, refreshed every frame
	width  int
	height int
	fieldH int
}

func NewRenderer(screen tcell.Screen, palette Palette, reg *status.Registry, t parameter.Tuning) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
		reg:     reg,
		frameW:  t.FrameWidth,
		frameH:  parameter.FrameHeight,
		floor:   t.FloorLine,
	}
}

// Draw renders one complete frame and shows it
func (r *Renderer) Draw(s engine.Snapshot) {
	r.width, r.height = r.screen.Size()
	r.fieldH = r.height - statusRows
	if r.width <= 0 || r.fieldH <= 0 {
		return
	}

	bg := tcell.StyleDefault.Background(r.palette.Background)
	r.screen.Fill(' ', bg)

	r.drawFloor(bg.Foreground(r.palette.Floor))
	if s.Foot.Ok {
		r.drawDisc(s.Foot.Point.Vec(), parameter.FootGuideDiameter, guideRune, bg.Foreground(r.palette.FootGuide))
	}
	r.drawDisc(s.Ball.Pos, parameter.BallDiameter, ballRune, bg.Foreground(r.palette.Ball))

	r.drawStatusBar(s)
	r.drawCounters()

	if s.Phase.Terminal() {
		r.drawGameOver()
	}

	r.screen.Show()
}

// CellOf maps an image-space point to a screen cell of the field, unclipped
func (r *Renderer) CellOf(p vmath.Vec2) (int, int) {
	x := int(math.Floor(p.X * float64(r.width) / r.frameW))
	y := int(math.Floor(p.Y * float64(r.fieldH) / r.frameH))
	return x, y
}

func (r *Renderer) inField(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.fieldH
}

func (r *Renderer) drawFloor(style tcell.Style) {
	_, y := r.CellOf(vmath.V(0, r.floor))
	if y >= r.fieldH {
		y = r.fieldH - 1
	}
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, floorRune, nil, style)
	}
}

// drawDisc fills every cell whose centre lies inside the circle
// The centre cell is always drawn so small terminals still show the object
func (r *Renderer) drawDisc(center vmath.Vec2, diameter float64, ch rune, style tcell.Style) {
	radius := diameter / 2
	cellW := r.frameW / float64(r.width)
	cellH := r.frameH / float64(r.fieldH)

	x0, y0 := r.CellOf(center.Sub(vmath.V(radius, radius)))
	x1, y1 := r.CellOf(center.Add(vmath.V(radius, radius)))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !r.inField(cx, cy) {
				continue
			}
			mid := vmath.V((float64(cx)+0.5)*cellW, (float64(cy)+0.5)*cellH)
			if vmath.Dist(mid, center) <= radius {
				r.screen.SetContent(cx, cy, ch, nil, style)
			}
		}
	}

	if cx, cy := r.CellOf(center); r.inField(cx, cy) {
		r.screen.SetContent(cx, cy, ch, nil, style)
	}
}

func (r *Renderer) drawStatusBar(s engine.Snapshot) {
	y := r.height - statusRows
	bar := tcell.StyleDefault.Background(r.palette.BarBg).Foreground(r.palette.BarText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, bar)
	}

	x := r.drawText(0, y, fmt.Sprintf(" Score: %d ", s.Score),
		tcell.StyleDefault.Background(r.palette.ScoreBg).Foreground(r.palette.BarText).Bold(true))
	x = r.drawText(x, y, fmt.Sprintf(" Tilt: %d° ", s.Tilt),
		tcell.StyleDefault.Background(r.palette.TiltBg).Foreground(r.palette.BarText))
	r.drawText(x, y, " Status: "+s.Status, bar)
}

func (r *Renderer) drawCounters() {
	y := r.height - 1
	style := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Counters)

	bridge := "none"
	if r.reg.Bools.Get(status.BridgeConnected).Load() {
		bridge = r.reg.Strings.Get(status.BridgeName).Load()
	}
	ints := r.reg.Ints
	line := fmt.Sprintf(" frames %d/%d  unmapped %d  kicks %d  tilt errs %d  bridge %s  dropped %d  |  r reset  ↑↓ tilt  q quit",
		ints.Get(status.FramesTracked).Load(),
		ints.Get(status.FramesUntracked).Load(),
		ints.Get(status.FramesUnresolved).Load(),
		ints.Get(status.Kicks).Load(),
		ints.Get(status.TiltRejected).Load(),
		bridge,
		ints.Get(status.FramesDropped).Load(),
	)
	r.drawText(0, y, line, style)
}

func (r *Renderer) drawGameOver() {
	msg := " GAME OVER  press r to play again "
	x := (r.width - len([]rune(msg))) / 2
	if x < 0 {
		x = 0
	}
	style := tcell.StyleDefault.Background(r.palette.GameOverBg).Foreground(tcell.ColorWhite).Bold(true)
	r.drawText(x, r.fieldH/2, msg, style)
}

// drawText writes s from x, clipped to the screen, and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
