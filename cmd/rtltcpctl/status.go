package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/sdrcore/rtltcpclient/rtltcp"
)

// statusInterval is how often the live status table is redrawn.
const statusInterval = 2 * time.Second

// runStatusLoop renders a small table of live session state until done is
// closed. Each tick is a full redraw rather than an in-place update,
// which is simpler and good enough for a terminal polled every couple of
// seconds.
func runStatusLoop(ctrl *rtltcp.Controller, done <-chan struct{}) {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			renderStatus(ctrl)
		}
	}
}

func renderStatus(ctrl *rtltcp.Controller) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "value"})

	table.Append([]string{"description", ctrl.GetDescription()})
	table.Append([]string{"running", fmt.Sprintf("%t", ctrl.IsOK())})
	table.Append([]string{"frequency (Hz)", fmt.Sprintf("%d", ctrl.GetFrequency())})
	table.Append([]string{"gain (dB)", fmt.Sprintf("%.1f", ctrl.GetGain())})
	table.Append([]string{"gain count", fmt.Sprintf("%d", ctrl.GetGainCount())})
	table.Append([]string{"samples queued", fmt.Sprintf("%d", ctrl.GetSamplesToRead())})

	table.Render()
}
