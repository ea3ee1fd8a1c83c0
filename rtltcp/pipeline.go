package rtltcp

// Buffer capacities, in bytes.
const (
	networkBufSize  = 256 * 32768
	sampleBufSize   = 32 * 32768
	spectrumBufSize = 8192
)

// pipeline is the two-stage ring-buffer pipeline: a large network buffer
// that smooths jitter, feeding both a sample buffer (the downstream demod
// feed) and a spectrum buffer (the downstream spectrum-display feed).
type pipeline struct {
	networkBuf  *RingBuffer
	sampleBuf   *RingBuffer
	spectrumBuf *RingBuffer
}

func newPipeline() *pipeline {
	return &pipeline{
		networkBuf:  NewRingBuffer(networkBufSize),
		sampleBuf:   NewRingBuffer(sampleBufSize),
		spectrumBuf: NewRingBuffer(spectrumBufSize),
	}
}

// reset flushes all three buffers. Called at every new connection.
func (p *pipeline) reset() {
	p.networkBuf.Flush()
	p.sampleBuf.Flush()
	p.spectrumBuf.Flush()
}
