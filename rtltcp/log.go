package rtltcp

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// Level is the severity of a message posted to a Sink: Information or
// Error.
type Level int

const (
	Information Level = iota
	Error
)

func (l Level) String() string {
	if l == Error {
		return "ERROR"
	}
	return "INFO"
}

// Sink is the typed message sink the controller publishes to. Embedders
// can supply their own; the default logs through a logutils-filtered
// log.Logger.
type Sink interface {
	Post(level Level, text string)
}

// logSink is the default Sink: a logutils.LevelFilter gates DEBUG chatter
// (internal connection detail not part of the embedding interface) from
// INFO/ERROR (Information/Error messages posted to embedders).
type logSink struct {
	logger *log.Logger
	filter *logutils.LevelFilter
}

// NewLogSink builds the default Sink, writing through a level-filtered
// logger to os.Stderr (minimum level INFO if minLevel is empty).
func NewLogSink(minLevel string) *logSink {
	if minLevel == "" {
		minLevel = "INFO"
	}
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "ERROR"},
		MinLevel: logutils.LogLevel(minLevel),
		Writer:   os.Stderr,
	}
	sink := &logSink{
		logger: log.New(filter, "", log.LstdFlags),
		filter: filter,
	}
	sink.debugf("log sink started at minimum level %s", minLevel)
	return sink
}

// SetMinLevel adjusts the minimum level the sink emits ("DEBUG", "INFO",
// or "ERROR").
func (s *logSink) SetMinLevel(level string) {
	s.filter.MinLevel = logutils.LogLevel(level)
}

func (s *logSink) Post(level Level, text string) {
	s.logger.Printf("[%s] %s", level, text)
}

// debugf emits internal connection-lifecycle detail at DEBUG, below the
// Sink interface's Information/Error severities.
func (s *logSink) debugf(format string, args ...interface{}) {
	s.logger.Printf("[DEBUG] "+format, args...)
}
