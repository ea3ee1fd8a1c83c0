package rtltcp

import (
	"encoding/binary"
	"fmt"
)

// recvChunkSize is the per-iteration read size.
const recvChunkSize = 8192

// dongleInfoSize is the wire size of the handshake record.
const dongleInfoSize = 12

// receiveLoop is the Receive Worker: the connect-and-reconnect loop owning
// the socket's read side. It runs until running is cleared (by Stop, a
// failed connect, or a bad handshake).
func (c *Controller) receiveLoop() {
	defer c.receiveWG.Done()

	for {
		c.mu.Lock()
		if !c.state.running {
			c.mu.Unlock()
			return
		}
		connected := c.state.connected
		c.mu.Unlock()

		if !connected {
			if !c.connectSession() {
				return
			}
		}

		c.receiveOnce()
	}
}

// connectSession attempts one connect. On success it ensures the AGC
// worker exists, resets the pipeline and mints a fresh session id for log
// correlation; on failure it tears the session down permanently and
// reports it returns false.
func (c *Controller) connectSession() bool {
	ok := c.sock.connect(c.host, c.port, connectTimeout)
	if !ok {
		c.mu.Lock()
		c.state.running = false
		c.state.agcOn = false
		c.mu.Unlock()
		c.post(Error, fmt.Sprintf("Connection failed to server %s:%d", c.host, c.port))
		return false
	}

	c.mu.Lock()
	c.state.connected = true
	stillRunning := c.state.running
	c.mu.Unlock()

	if stillRunning {
		c.ensureAGCWorker()
	}

	c.mu.Lock()
	c.state.firstData = true
	c.state.prebuffered = false
	c.sessionID = newSessionID()
	c.mu.Unlock()
	c.pipe.reset()
	c.post(Information, fmt.Sprintf("[%s] connected to %s:%d", c.sessionID, c.host, c.port))
	return true
}

// ensureAGCWorker launches the AGC worker if none is currently live. A
// mid-session disconnect leaves agcOn/the worker goroutine running (only
// Stop clears agcOn), so on reconnect this must skip the join/spawn
// rather than unconditionally waiting on agcWG — otherwise it deadlocks
// waiting for a worker that never exits.
func (c *Controller) ensureAGCWorker() {
	c.mu.Lock()
	if c.state.agcOn {
		c.mu.Unlock()
		return
	}
	if !c.state.running {
		c.mu.Unlock()
		return
	}
	c.state.agcOn = true
	c.mu.Unlock()

	c.agcWG.Add(1)
	go c.agcLoop()
}

// receiveOnce performs one read and dispatches it through the error
// classification table, or hands a successful payload to processPayload.
//
// Go's net.Conn.Read on a blocking socket already returns as soon as any
// bytes are available rather than only once the buffer is full, which is
// what lets a genuinely short first read (the "short handshake" case)
// surface here instead of only ever appearing after a full 8192-byte
// accumulation loop.
func (c *Controller) receiveOnce() {
	buf := make([]byte, recvChunkSize)
	n, err := c.sock.recv(buf)

	if err == nil {
		if n == 0 {
			c.handleDisconnect()
			return
		}
		c.processPayload(buf[:n])
		return
	}

	switch classifyRecvError(err) {
	case classTransient:
		return
	case classDisconnect:
		c.handleDisconnect()
	default:
		c.post(Error, fmt.Sprintf("recv error: %v", err))
		c.handleDisconnect()
	}
}

// handleDisconnect marks the session disconnected, closes the socket and
// notifies the controller. The outer loop retries connect on its next
// iteration unless running has also been cleared.
func (c *Controller) handleDisconnect() {
	c.mu.Lock()
	c.state.connected = false
	c.state.firstData = true
	sessionID := c.sessionID
	c.mu.Unlock()
	c.sock.close()
	c.post(Error, fmt.Sprintf("[%s] RTL-TCP connection closed.", sessionID))
}

// processPayload handles one received chunk: handshake parse (first
// chunk of a session only), enqueueing the remainder into network_buf,
// the prebuffer threshold check, and the per-iteration amplitude scan.
func (c *Controller) processPayload(payload []byte) {
	c.mu.Lock()
	firstData := c.state.firstData
	c.mu.Unlock()

	offset := 0
	if firstData {
		if len(payload) < dongleInfoSize {
			// Not an error: accumulate more on the next iteration.
			return
		}

		var info DongleInfo
		copy(info.Magic[:], payload[0:4])
		info.Tuner = Tuner(binary.BigEndian.Uint32(payload[4:8]))
		info.GainCount = binary.BigEndian.Uint32(payload[8:12])

		if !info.Valid() {
			c.handleDisconnect()
			c.mu.Lock()
			c.state.running = false
			c.state.agcOn = false
			c.mu.Unlock()
			return
		}

		c.mu.Lock()
		c.info = info
		c.state.firstData = false
		gainIndex := c.state.curGainIndex
		frequency := c.state.frequency
		rate := c.inputRate
		c.mu.Unlock()

		// Unconditional startup command sequence, issued on every
		// successful handshake including reconnects.
		c.sendGainMode(1)
		gainValue := gainValueFor(info.Tuner, gainIndex)
		c.mu.Lock()
		c.state.curGainValue = gainValue
		c.mu.Unlock()
		c.sendGain(int32(10 * gainValue))
		c.sendRate(rate)
		c.sendVFO(frequency)

		offset = dongleInfoSize
	}

	rest := payload[offset:]
	if len(rest) == 0 {
		return
	}

	c.pipe.networkBuf.Put(rest)

	c.mu.Lock()
	prebuffered := c.state.prebuffered
	c.mu.Unlock()
	if !prebuffered {
		avail := c.pipe.networkBuf.Available()
		capc := c.pipe.networkBuf.Capacity()
		if capc > 0 && float64(avail)/float64(capc) >= 0.5 {
			c.mu.Lock()
			c.state.prebuffered = true
			c.mu.Unlock()
		}
	}

	minB, maxB := rest[0], rest[0]
	for _, b := range rest[1:] {
		if b < minB {
			minB = b
		}
		if b > maxB {
			maxB = b
		}
	}
	c.state.setAmplitudes(minB, maxB)
}
