package rtltcp

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInputRate is the nominal IQ sample rate the downstream DSP
// expects. Rather than a compile-time constant baked into one embedding
// system, it's a configurable constructor argument so the same binary
// can serve more than one, defaulting to 2.048 Msps (the rate welle.io
// tunes its rtl_tcp input to).
const DefaultInputRate int32 = 2048000

// connectTimeout is the per-attempt connect timeout.
const connectTimeout = 2 * time.Second

// restartHandshakeGrace is how long restart() sleeps to give the
// handshake a chance to complete before reporting connected.
const restartHandshakeGrace = 500 * time.Millisecond

// Controller is the Session Controller: the public API, owning the three
// worker goroutines and their lifecycles, enforcing start/stop atomicity.
type Controller struct {
	// mu is the session mutex: guards socket open/close, connected,
	// running, agcOn, and AGC worker launch/join. Never held across a
	// blocking recv/send.
	mu    sync.Mutex
	state sessionState

	host string
	port uint16

	inputRate int32

	sock *socketSession
	pipe *pipeline
	info DongleInfo

	sink Sink

	androidExit bool // set true on GOOS=android builds, see android.go

	receiveWG sync.WaitGroup
	pacingWG  sync.WaitGroup
	agcWG     sync.WaitGroup

	sessionID string // correlates log lines across one connected session
}

// NewController builds a Controller targeting host:port with the given
// initial gain index and input rate (use DefaultInputRate unless the
// embedding DSP needs something else). It does not connect; call
// Restart to start the workers.
func NewController(host string, port uint16, initialGainIndex uint16, inputRate int32) *Controller {
	if inputRate <= 0 {
		inputRate = DefaultInputRate
	}
	c := &Controller{
		host:        host,
		port:        port,
		inputRate:   inputRate,
		sock:        &socketSession{},
		pipe:        newPipeline(),
		sink:        NewLogSink("INFO"),
		androidExit: isAndroidPlatform,
	}
	c.state.curGainIndex = initialGainIndex
	return c
}

// SetSink overrides the default log-backed message sink.
func (c *Controller) SetSink(sink Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
}

// SetLogLevel adjusts the minimum severity the default sink emits ("DEBUG",
// "INFO", or "ERROR"). A no-op if an embedder has replaced the sink with
// something other than the default logutils-backed one.
func (c *Controller) SetLogLevel(level string) {
	c.mu.Lock()
	sink := c.sink
	c.mu.Unlock()
	if ls, ok := sink.(*logSink); ok {
		ls.SetMinLevel(level)
	}
}

func (c *Controller) post(level Level, text string) {
	c.mu.Lock()
	sink := c.sink
	c.mu.Unlock()
	if sink != nil {
		sink.Post(level, text)
	}
}

// SetServerAddress stores the host used by the next connect.
func (c *Controller) SetServerAddress(host string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.host = host
}

// SetPort stores the port used by the next connect.
func (c *Controller) SetPort(port uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.port = port
}

// SetFrequency updates the cached frequency and issues sendVFO(hz).
func (c *Controller) SetFrequency(hz int32) {
	c.mu.Lock()
	c.state.frequency = hz
	c.mu.Unlock()
	c.sendVFO(hz)
}

// GetFrequency returns the cached frequency.
func (c *Controller) GetFrequency() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.frequency
}

// SetGain updates cur_gain_index, resolves the gain value via the
// schedule, issues the set_gain command in units of 0.1 dB, and returns
// the resolved gain value.
func (c *Controller) SetGain(index uint16) float32 {
	c.applyGainIndex(index)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.curGainValue
}

// GetGain returns cur_gain_value.
func (c *Controller) GetGain() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.curGainValue
}

// GetGainIndex returns cur_gain_index — a natural accessor for a CLI that
// steps gain relative to where it currently sits.
func (c *Controller) GetGainIndex() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.curGainIndex
}

// GetGainCount returns the gain schedule length for the current tuner (29
// for an unknown tuner).
func (c *Controller) GetGainCount() uint32 {
	c.mu.Lock()
	tuner := c.info.Tuner
	c.mu.Unlock()
	return uint32(gainCountFor(tuner))
}

// SetAGC turns the software AGC loop on or off.
func (c *Controller) SetAGC(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.agcOn = on
}

// GetSamples reads up to 2n bytes from sample_buf, converts each (I,Q)
// byte pair into one complex64 sample ((I-128)/128, (Q-128)/128), and
// returns the number of complex samples written into out (which must have
// capacity >= n).
func (c *Controller) GetSamples(out []complex64, n int) int {
	return readConvert(c.pipe.sampleBuf, out, n)
}

// GetSpectrumSamples is the same conversion from spectrum_buf.
func (c *Controller) GetSpectrumSamples(n int) []complex64 {
	out := make([]complex64, n)
	got := readConvert(c.pipe.spectrumBuf, out, n)
	return out[:got]
}

func readConvert(rb *RingBuffer, out []complex64, n int) int {
	tmp := make([]byte, 2*n)
	amount := rb.Get(tmp, 2*n)
	count := amount / 2
	for i := 0; i < count; i++ {
		I := (float32(tmp[2*i]) - 128.0) / 128.0
		Q := (float32(tmp[2*i+1]) - 128.0) / 128.0
		out[i] = complex(I, Q)
	}
	return count
}

// GetSamplesToRead returns sample_buf.available()/2.
func (c *Controller) GetSamplesToRead() int {
	return c.pipe.sampleBuf.Available() / 2
}

// Reset flushes all three buffers and clears prebuffered.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state.prebuffered = false
	c.mu.Unlock()
	c.pipe.reset()
}

// GetDescription returns a human-readable identifier for this session.
func (c *Controller) GetDescription() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("rtl_tcp_client (server: %s:%d)", c.host, c.port)
}

// IsOK reports whether the session is running.
func (c *Controller) IsOK() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.running
}

// Restart is an idempotent start: if already running, returns true. Else
// it joins any residual worker handles from a previous failed start,
// spawns the pacing worker then the receive worker, sleeps to allow the
// handshake a chance to complete, and returns connected.
func (c *Controller) Restart() bool {
	c.mu.Lock()
	if c.state.running {
		c.mu.Unlock()
		return true
	}
	c.mu.Unlock()

	// Clean up stale goroutines from a previous failed start before
	// launching new ones — mirrors the original's joinable-handle guard.
	c.receiveWG.Wait()
	c.agcWG.Wait()
	c.pacingWG.Wait()

	c.mu.Lock()
	c.state.running = true
	c.mu.Unlock()

	c.pacingWG.Add(1)
	go c.pacingLoop()

	c.receiveWG.Add(1)
	go c.receiveLoop()

	time.Sleep(restartHandshakeGrace)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.connected
}

// Stop is the sole cancellation primitive. On Android it first sends the
// exit sentinel. It closes the socket (unblocking any pending recv),
// clears running/connected/agcOn, then joins all three workers.
func (c *Controller) Stop() {
	if c.androidExit {
		c.sendAndroidExit()
	}

	c.mu.Lock()
	c.sock.close()
	c.state.running = false
	c.state.connected = false
	c.mu.Unlock()

	c.receiveWG.Wait()

	c.mu.Lock()
	c.state.agcOn = false
	c.mu.Unlock()
	c.agcWG.Wait()

	c.pacingWG.Wait()

	c.mu.Lock()
	c.state.connected = false
	c.mu.Unlock()
}

func newSessionID() string {
	return uuid.NewString()
}
