package tracking

import (
	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/parameter"
)

// Mapper converts a sensor-space joint into the ball's screen space
// Implementations report failure as core.Unresolved, never as an error
type Mapper interface {
	Map(j core.Joint) core.MaybePoint
}

// MapperFunc adapts a function to Mapper
type MapperFunc func(j core.Joint) core.MaybePoint

func (f MapperFunc) Map(j core.Joint) core.MaybePoint { return f(j) }

// Nominal colour camera intrinsics for the 640x480 stream
const (
	ColorFocalLength = 531.15
	ColorCenterX     = parameter.FrameWidth / 2
	ColorCenterY     = parameter.FrameHeight / 2
)

// ColorMapper is a pinhole projection from skeleton space into colour-image pixels
// Skeleton space is right-handed with Y up; image space has Y down
type ColorMapper struct {
	FocalX, FocalY   float64
	CenterX, CenterY float64
}

// NewColorMapper returns a mapper with the nominal 640x480 intrinsics
func NewColorMapper() *ColorMapper {
	return &ColorMapper{
		FocalX:  ColorFocalLength,
		FocalY:  ColorFocalLength,
		CenterX: ColorCenterX,
		CenterY: ColorCenterY,
	}
}

// Map implements Mapper
func (m *ColorMapper) Map(j core.Joint) core.MaybePoint {
	// Behind or on the sensor plane: no projection
	if !(j.Z > 0) {
		return core.Unresolved
	}
	x := m.CenterX + m.FocalX*j.X/j.Z
	y := m.CenterY - m.FocalY*j.Y/j.Z
	return core.Resolve(x, y)
}

// Unproject returns the joint at depth z that maps onto p
func (m *ColorMapper) Unproject(p core.ScreenPoint, z float64) core.Joint {
	return core.Joint{
		X: (p.X - m.CenterX) * z / m.FocalX,
		Y: -(p.Y - m.CenterY) * z / m.FocalY,
		Z: z,
	}
}
