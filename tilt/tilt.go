// Package tilt reads sensor elevation requests from the knob controller's serial line
package tilt

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/vmath"
)

// TiltSink receives validated elevation angles, satisfied by *engine.Loop
type TiltSink interface {
	SubmitTilt(angle int)
}

// ParseLine extracts the angle from an "ANGLE:<n>" line, clamped to the motor range
// Lines without the prefix or with a non-integer value report ok=false
func ParseLine(line string) (angle int, ok bool) {
	line = strings.TrimSpace(line)
	rest, found := strings.CutPrefix(line, parameter.TiltLinePrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return vmath.Clamp(n, parameter.TiltMin, parameter.TiltMax), true
}
