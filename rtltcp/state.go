package rtltcp

import "sync/atomic"

// sessionState holds the session's mutable flags, guarded by the session
// mutex in controller.go, plus the amplitude extremes which are plain
// atomics (single-writer from the receive worker, single-reader from the
// AGC worker; a torn read across the two bytes is acceptable since the
// AGC worker re-samples every 50ms tick).
type sessionState struct {
	running      bool
	connected    bool
	agcOn        bool
	firstData    bool
	prebuffered  bool
	curGainIndex uint16
	curGainValue float32
	frequency    int32

	minAmp atomic.Uint32 // stores a uint8, widened for atomic.Uint32 portability
	maxAmp atomic.Uint32
}

func (s *sessionState) setAmplitudes(min, max uint8) {
	s.minAmp.Store(uint32(min))
	s.maxAmp.Store(uint32(max))
}

func (s *sessionState) amplitudes() (min, max uint8) {
	return uint8(s.minAmp.Load()), uint8(s.maxAmp.Load())
}
