package main

import (
	"flag"

	"gopkg.in/ini.v1"
)

// config holds everything needed to build an rtltcp.Controller. Flags are
// parsed against built-in defaults first; afterwards, any flag the user
// did NOT explicitly set on the command line is overridden by the ini
// file, if one was given via -conf. This is the inverse order of naively
// parsing flags last, but it's what lets a file supply a baseline
// configuration while still letting any individual flag win.
type config struct {
	Host       string
	Port       uint
	Frequency  int
	GainIndex  uint
	InputRate  int
	LogLevel   string
	ConfigFile string
}

func defaultConfig() *config {
	return &config{
		Host:      "127.0.0.1",
		Port:      1234,
		Frequency: 94600000,
		GainIndex: 0,
		InputRate: 2048000,
		LogLevel:  "INFO",
	}
}

func (cfg *config) registerFlags() {
	flag.StringVar(&cfg.ConfigFile, "conf", "", "optional ini configuration file")
	flag.StringVar(&cfg.Host, "host", cfg.Host, "rtl_tcp server address")
	flag.UintVar(&cfg.Port, "port", cfg.Port, "rtl_tcp server port")
	flag.IntVar(&cfg.Frequency, "freq", cfg.Frequency, "center frequency in Hz")
	flag.UintVar(&cfg.GainIndex, "gain-index", cfg.GainIndex, "initial gain index")
	flag.IntVar(&cfg.InputRate, "input-rate", cfg.InputRate, "nominal IQ sample rate in Hz")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "DEBUG, INFO, or ERROR")
}

// applyConfigFile overlays the ini file's values onto cfg, skipping any
// key whose corresponding flag was explicitly set on the command line.
// No configuration is ever written back to the file: this core treats
// persistence of settings as out of scope.
func (cfg *config) applyConfigFile(explicit map[string]bool) error {
	if cfg.ConfigFile == "" {
		return nil
	}
	file, err := ini.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	section := file.Section("")

	if !explicit["host"] && section.HasKey("host") {
		cfg.Host = section.Key("host").String()
	}
	if !explicit["port"] && section.HasKey("port") {
		if v, err := section.Key("port").Uint(); err == nil {
			cfg.Port = v
		}
	}
	if !explicit["freq"] && section.HasKey("frequency") {
		if v, err := section.Key("frequency").Int(); err == nil {
			cfg.Frequency = v
		}
	}
	if !explicit["gain-index"] && section.HasKey("gain_index") {
		if v, err := section.Key("gain_index").Uint(); err == nil {
			cfg.GainIndex = v
		}
	}
	if !explicit["input-rate"] && section.HasKey("input_rate") {
		if v, err := section.Key("input_rate").Int(); err == nil {
			cfg.InputRate = v
		}
	}
	if !explicit["log-level"] && section.HasKey("log_level") {
		cfg.LogLevel = section.Key("log_level").String()
	}
	return nil
}

// explicitFlags returns the set of flag names the user actually passed,
// used to decide which ones a config file is allowed to override.
func explicitFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
