package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Palette is the set of styles the renderer draws with
type Palette struct {
	Background tcell.Color
	Ball       tcell.Color
	FootGuide  tcell.Color
	Floor      tcell.Color
	BarBg      tcell.Color
	BarText    tcell.Color
	ScoreBg    tcell.Color
	TiltBg     tcell.Color
	GameOverBg tcell.Color
	Counters   tcell.Color
}

// RGB palette; the ball is red and the foot guide lime
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBall       = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbFootGuide  = tcell.NewRGBColor(0, 255, 0)     // Lime
	RgbFloor      = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBarBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbScoreBg    = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbTiltBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbCounters   = tcell.NewRGBColor(120, 120, 140) // Muted
)

// TrueColorPalette uses 24-bit colors
func TrueColorPalette() Palette {
	return Palette{
		Background: RgbBackground,
		Ball:       RgbBall,
		FootGuide:  RgbFootGuide,
		Floor:      RgbFloor,
		BarBg:      RgbBarBg,
		BarText:    RgbStatusText,
		ScoreBg:    RgbScoreBg,
		TiltBg:     RgbTiltBg,
		GameOverBg: RgbGameOverBg,
		Counters:   RgbCounters,
	}
}

// BasicPalette sticks to the 16 ANSI colors for terminals without RGB support
func BasicPalette() Palette {
	return Palette{
		Background: tcell.ColorDefault,
		Ball:       tcell.ColorRed,
		FootGuide:  tcell.ColorLime,
		Floor:      tcell.ColorSilver,
		BarBg:      tcell.ColorTeal,
		BarText:    tcell.ColorBlack,
		ScoreBg:    tcell.ColorWhite,
		TiltBg:     tcell.ColorGreen,
		GameOverBg: tcell.ColorMaroon,
		Counters:   tcell.ColorGray,
	}
}

// PaletteFor resolves a color mode name: "true" or "basic"
func PaletteFor(mode string) (Palette, error) {
	switch strings.ToLower(mode) {
	case "", "true", "truecolor", "rgb":
		return TrueColorPalette(), nil
	case "basic", "ansi", "16":
		return BasicPalette(), nil
	default:
		return Palette{}, errors.Errorf("unknown color mode %q", mode)
	}
}
