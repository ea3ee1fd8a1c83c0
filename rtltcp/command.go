package rtltcp

// sendCommand writes a 5-byte command to the socket if connected and the
// socket is valid; otherwise it's silently dropped — a partial or failed
// send is never retried here, the next receive-side failure is
// authoritative.
func (c *Controller) sendCommand(cmd uint8, param int32) {
	c.mu.Lock()
	connected := c.state.connected
	c.mu.Unlock()
	if !connected || !c.sock.valid() {
		return
	}
	b := command{cmd: cmd, param: param}.encode()
	c.sock.send(b[:])
}

func (c *Controller) sendVFO(frequency int32) {
	c.sendCommand(cmdSetFrequency, frequency)
}

func (c *Controller) sendRate(rate int32) {
	c.sendCommand(cmdSetSampleRate, rate)
}

func (c *Controller) sendGainMode(mode int32) {
	c.sendCommand(cmdSetGainMode, mode)
}

func (c *Controller) sendGain(tenthsDB int32) {
	c.sendCommand(cmdSetGain, tenthsDB)
}

func (c *Controller) sendAndroidExit() {
	c.sendCommand(cmdAndroidExit, 0)
}
