package parameter

// Sensor elevation motor limits in degrees
const (
	TiltMin = -27
	TiltMax = 27
)

// Serial link to the tilt knob microcontroller
const (
	SerialBaud      = 9600
	TiltLinePrefix  = "ANGLE:"
	TiltKeyStep     = 1
	MaxTiltLineSize = 64
)
