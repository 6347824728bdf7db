package engine

import "github.com/pkg/errors"

// ErrElevatorNotReady is returned when no sensor is available to tilt
var ErrElevatorNotReady = errors.New("elevator not ready")

// Elevator drives the sensor's elevation motor
// Errors stay at this boundary; the game only logs and counts them
type Elevator interface {
	SetElevation(angle int) error
}

// ElevatorFunc adapts a function to Elevator
type ElevatorFunc func(angle int) error

func (f ElevatorFunc) SetElevation(angle int) error { return f(angle) }

type noElevator struct{}

func (noElevator) SetElevation(int) error { return ErrElevatorNotReady }
