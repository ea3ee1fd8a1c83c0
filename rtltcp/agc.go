package rtltcp

import (
	"math"
	"time"
)

// agcTick is the AGC Worker's fixed cadence.
const agcTick = 50 * time.Millisecond

// agcLoop is the AGC Worker: a fixed-cadence software AGC that reads the
// amplitude extremes most recently stored by the Receive Worker and
// issues gain-index changes via the control channel.
func (c *Controller) agcLoop() {
	defer c.agcWG.Done()

	ticker := time.NewTicker(agcTick)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		running := c.state.running
		agcOn := c.state.agcOn
		tuner := c.info.Tuner
		gainIndex := c.state.curGainIndex
		c.mu.Unlock()

		if !running {
			return
		}

		minAmp, maxAmp := c.state.amplitudes()
		clipping := minAmp == 0 || maxAmp == 255

		switch {
		case agcOn && tuner != TunerUnknown:
			c.agcStep(tuner, gainIndex, clipping, minAmp, maxAmp)
		case clipping:
			c.post(Information, "ADC overload. Maybe you are using a too high gain.")
		}
	}
}

// agcStep implements the one downshift-or-upshift decision per tick.
// The upshift safety check against newMin >= 0 is always true since
// minAmp is unsigned and linGain > 0 — preserved verbatim from the
// original rather than "fixed".
func (c *Controller) agcStep(tuner Tuner, gainIndex uint16, clipping bool, minAmp, maxAmp uint8) {
	schedule, count := scheduleFor(tuner)

	if clipping && gainIndex > 0 {
		c.applyGainIndex(gainIndex - 1)
		return
	}

	if int(gainIndex) >= count-1 {
		return
	}

	deltaDB := float64(schedule[gainIndex+1]-schedule[gainIndex]) / 10.0
	linGain := math.Pow(10, deltaDB/20.0)
	newMax := float64(maxAmp) * linGain
	newMin := float64(minAmp) / linGain

	if newMin >= 0 && newMax <= 255 {
		c.applyGainIndex(gainIndex + 1)
	}
}

// applyGainIndex updates cur_gain_index/cur_gain_value and emits the
// resulting set_gain command, shared by AGC decisions and SetGain.
func (c *Controller) applyGainIndex(index uint16) {
	c.mu.Lock()
	tuner := c.info.Tuner
	c.state.curGainIndex = index
	gainValue := gainValueFor(tuner, index)
	c.state.curGainValue = gainValue
	c.mu.Unlock()
	c.sendGain(int32(10 * gainValue))
}
