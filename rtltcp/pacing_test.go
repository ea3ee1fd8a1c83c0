package rtltcp

import (
	"testing"
	"time"
)

// TestPacingForwardsBytesOncePrebuffered verifies byte order is
// preserved when the pacing worker forwards into sample_buf/spectrum_buf.
func TestPacingForwardsBytesOncePrebuffered(t *testing.T) {
	c := NewController("127.0.0.1", 1234, 0, DefaultInputRate)
	c.state.running = true
	c.state.prebuffered = true

	payload := []byte{10, 20, 30, 40, 50, 60}
	c.pipe.networkBuf.Put(payload)

	c.pacingWG.Add(1)
	go c.pacingLoop()

	deadline := time.Now().Add(2 * time.Second)
	for c.pipe.sampleBuf.Available() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	c.mu.Lock()
	c.state.running = false
	c.mu.Unlock()
	c.pacingWG.Wait()

	out := make([]byte, len(payload))
	n := c.pipe.sampleBuf.Get(out, len(payload))
	if n != len(payload) {
		t.Fatalf("sample_buf delivered %d bytes, want %d", n, len(payload))
	}
	for i := range payload {
		if out[i] != payload[i] {
			t.Fatalf("sample_buf byte %d = %d, want %d (order must be preserved)", i, out[i], payload[i])
		}
	}

	spectrum := make([]byte, len(payload))
	n = c.pipe.spectrumBuf.Get(spectrum, len(payload))
	if n != len(payload) {
		t.Fatalf("spectrum_buf delivered %d bytes, want %d", n, len(payload))
	}
}

// TestPacingUnderflowDoesNotClearPrebuffered verifies an underflow resets
// the pacing deadline without clearing the prebuffered flag.
func TestPacingUnderflowDoesNotClearPrebuffered(t *testing.T) {
	c := NewController("127.0.0.1", 1234, 0, DefaultInputRate)
	c.state.running = true
	c.state.prebuffered = true
	// network_buf stays empty: every iteration should be an underflow.

	c.pacingWG.Add(1)
	go c.pacingLoop()

	time.Sleep(pacingIdleSleep + 50*time.Millisecond)

	c.mu.Lock()
	c.state.running = false
	c.mu.Unlock()
	c.pacingWG.Wait()

	if !c.state.prebuffered {
		t.Fatal("expected prebuffered to remain true across an underflow")
	}
	if c.pipe.sampleBuf.Available() != 0 {
		t.Fatal("expected no bytes forwarded during underflow")
	}
}

func TestPacingWaitsForPrebufferBeforeForwarding(t *testing.T) {
	c := NewController("127.0.0.1", 1234, 0, DefaultInputRate)
	c.state.running = true
	c.state.prebuffered = false
	c.pipe.networkBuf.Put([]byte{1, 2, 3, 4})

	c.pacingWG.Add(1)
	go c.pacingLoop()

	time.Sleep(30 * time.Millisecond)

	if c.pipe.sampleBuf.Available() != 0 {
		t.Fatal("expected no forwarding before prebuffered is set")
	}

	c.mu.Lock()
	c.state.running = false
	c.mu.Unlock()
	c.pacingWG.Wait()
}
