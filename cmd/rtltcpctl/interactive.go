package main

import (
	"log"

	"github.com/eiannone/keyboard"

	"github.com/sdrcore/rtltcpclient/rtltcp"
)

// gainStep is how many gain-schedule indices each keypress moves.
const gainStep = 1

// freqStep is how many Hz the left/right arrow keys retune by.
const freqStep = 10000

// runInteractive polls the keyboard for live control commands until the
// user quits, then closes quit. Controls: arrow up/down steps gain,
// arrow left/right steps frequency, 'a' toggles AGC, 'd' toggles debug
// logging, 'q' or Ctrl-C quits.
func runInteractive(ctrl *rtltcp.Controller, quit chan<- struct{}) {
	if err := keyboard.Open(); err != nil {
		log.Println("interactive control disabled:", err)
		return
	}
	defer keyboard.Close()

	agcOn := true
	debugOn := false
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			close(quit)
			return
		}

		switch {
		case key == keyboard.KeyCtrlC || char == 'q' || char == 'Q':
			close(quit)
			return
		case key == keyboard.KeyArrowUp:
			ctrl.SetGain(nextGainIndex(ctrl, gainStep))
		case key == keyboard.KeyArrowDown:
			ctrl.SetGain(nextGainIndex(ctrl, -gainStep))
		case key == keyboard.KeyArrowRight:
			ctrl.SetFrequency(ctrl.GetFrequency() + freqStep)
		case key == keyboard.KeyArrowLeft:
			ctrl.SetFrequency(ctrl.GetFrequency() - freqStep)
		case char == 'a' || char == 'A':
			agcOn = !agcOn
			ctrl.SetAGC(agcOn)
		case char == 'd' || char == 'D':
			debugOn = !debugOn
			if debugOn {
				ctrl.SetLogLevel("DEBUG")
			} else {
				ctrl.SetLogLevel("INFO")
			}
		}
	}
}

func nextGainIndex(ctrl *rtltcp.Controller, delta int) uint16 {
	count := int(ctrl.GetGainCount())
	current := int(ctrl.GetGainIndex())
	next := current + delta
	if next < 0 {
		next = 0
	}
	if count > 0 && next >= count {
		next = count - 1
	}
	return uint16(next)
}
