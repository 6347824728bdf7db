package tilt

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// ErrNoPort is returned by Open when no serial port is named or present
var ErrNoPort = errors.New("no serial port")

// Open opens the knob controller's port in 8N1 at baud
// An empty name selects the first port the system reports
func Open(name string, baud int) (serial.Port, error) {
	if name == "" {
		ports, err := serial.GetPortsList()
		if err != nil {
			return nil, errors.Wrap(err, "list serial ports")
		}
		if len(ports) == 0 {
			return nil, ErrNoPort
		}
		name = ports[0]
	}

	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", name)
	}
	return port, nil
}
