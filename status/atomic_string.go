package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds bridge names and other labels shown in the status bar
const MaxStringLen = 48

// AtomicString is a status-bar label written by one goroutine and read by the display
// Zero value is ready to use and reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, cut to at most MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
