package log

import (
	"github.com/jonboulle/clockwork"
)

type Option interface {
	applyHolderOption(l *wrapper)
}

var (
	_ Option             = logQueryOption{}
	_ Option             = clockOption{}
	_ simpleLoggerOption = clockOption{}
	_ simpleLoggerOption = coloringOption{}
	_ simpleLoggerOption = minLevelOption(INFO)
)

type logQueryOption struct{}

func (logQueryOption) applyHolderOption(l *wrapper) {
	l.logQuery = true
}

// WithLogQuery enables logging of query text and parameter values
func WithLogQuery() logQueryOption {
	return logQueryOption{}
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applyHolderOption(l *wrapper) {
	l.clock = o.clock
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	l.clock = o.clock
}

// WithClock replaces the clock used for timestamps and latencies
func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}

type coloringOption struct{}

func (coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = true
}

func WithColoring() coloringOption {
	return coloringOption{}
}

type minLevelOption Level

func (o minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(o)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}
