package rtltcp

import (
	"encoding/binary"
	"sync"
)

// fakeSink is a Sink that records everything posted to it, for assertions
// in tests that need to observe Error/Information messages.
type fakeSink struct {
	mu       sync.Mutex
	messages []string
	levels   []Level
}

func (s *fakeSink) Post(level Level, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = append(s.levels, level)
	s.messages = append(s.messages, text)
}

func (s *fakeSink) count(level Level) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.levels {
		if l == level {
			n++
		}
	}
	return n
}

// buildDongleInfoBytes encodes a handshake record the way the server side
// of rtl_tcp does: "RTL0" followed by two big-endian u32 fields.
func buildDongleInfoBytes(tuner Tuner, gainCount uint32) []byte {
	b := make([]byte, dongleInfoSize)
	copy(b[0:4], dongleMagic[:])
	binary.BigEndian.PutUint32(b[4:8], uint32(tuner))
	binary.BigEndian.PutUint32(b[8:12], gainCount)
	return b
}
