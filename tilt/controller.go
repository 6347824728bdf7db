package tilt

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kickball/parameter"
)

// Controller turns a line stream into tilt submissions
type Controller struct {
	r    io.Reader
	sink TiltSink

	accepted  atomic.Int64
	discarded atomic.Int64
}

func NewController(r io.Reader, sink TiltSink) *Controller {
	return &Controller{r: r, sink: sink}
}

// Run reads lines until EOF, a read error, or ctx cancellation
// Lines longer than MaxTiltLineSize are discarded and reading continues
// If the reader is an io.Closer it is closed on cancellation to unblock the pending read
func (c *Controller) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	if closer, ok := c.r.(io.Closer); ok {
		go func() {
			select {
			case <-ctx.Done():
				closer.Close()
			case <-done:
			}
		}()
	}

	br := bufio.NewReaderSize(c.r, parameter.MaxTiltLineSize)
	overlong := false
	for {
		line, err := br.ReadSlice('\n')
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			// Count the line once, then skip its remainder up to the next newline
			if !overlong {
				c.discarded.Add(1)
				log.Printf("[tilt] discarded line over %d bytes", parameter.MaxTiltLineSize)
			}
			overlong = true
			continue
		}

		if overlong {
			overlong = false
		} else if len(line) > 0 {
			c.HandleLine(string(bytes.TrimRight(line, "\r\n")))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Wrap(err, "tilt: read")
		}
	}
}

// HandleLine forwards one line if it parses, returns whether it did
func (c *Controller) HandleLine(line string) bool {
	angle, ok := ParseLine(line)
	if !ok {
		c.discarded.Add(1)
		log.Printf("[tilt] discarded line %q", line)
		return false
	}
	c.accepted.Add(1)
	c.sink.SubmitTilt(angle)
	return true
}

// Stats returns accepted and discarded line counts
func (c *Controller) Stats() (accepted, discarded int64) {
	return c.accepted.Load(), c.discarded.Load()
}
