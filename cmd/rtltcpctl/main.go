// Command rtltcpctl is a small interactive driver for the rtltcp core: it
// connects to an rtl_tcp server, lets the operator steer frequency/gain/AGC
// from the keyboard, and prints a periodic status table. It exercises the
// public Controller API; it is not itself part of the core session engine.
package main

import (
	"flag"
	"log"

	"github.com/sdrcore/rtltcpclient/rtltcp"
)

func main() {
	cfg := defaultConfig()
	cfg.registerFlags()
	flag.Parse()

	if err := cfg.applyConfigFile(explicitFlags()); err != nil {
		log.Fatal("error reading configuration file: ", err)
	}

	ctrl := rtltcp.NewController(cfg.Host, uint16(cfg.Port), uint16(cfg.GainIndex), int32(cfg.InputRate))
	sink := rtltcp.NewLogSink(cfg.LogLevel)
	ctrl.SetSink(sink)
	ctrl.SetFrequency(int32(cfg.Frequency))

	if !ctrl.Restart() {
		log.Println("initial connect did not complete within the handshake grace period, retrying in background")
	}
	defer ctrl.Stop()

	quit := make(chan struct{})
	go runInteractive(ctrl, quit)
	runStatusLoop(ctrl, quit)
}
