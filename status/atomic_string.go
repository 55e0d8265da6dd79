package status

import "sync/atomic"

// MaxStringLen caps string metrics; every run-mode label fits within it
const MaxStringLen = 20

// AtomicString holds a short label such as the run mode shown first on the
// status bar. Writers store from the event loop, the snapshot reads it
// Zero value is ready to use (represents empty string)
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the string value, truncating to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the current string value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
