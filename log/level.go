package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const (
	colorReset = "\033[0m"
)

var (
	levelNames = [...]string{
		TRACE: "TRACE",
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
		QUIET: "QUIET",
	}
	levelColors = [...]string{
		TRACE: "\033[38m",
		DEBUG: "\033[37m",
		INFO:  "\033[36m",
		WARN:  "\033[33m",
		ERROR: "\033[31m",
		FATAL: "\033[41m",
		QUIET: colorReset,
	}
)

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

func (l Level) String() string {
	if !l.valid() {
		return levelNames[QUIET]
	}

	return levelNames[l]
}

func (l Level) Color() string {
	if !l.valid() {
		return levelColors[QUIET]
	}

	return levelColors[l]
}

// FromString parses level name case-insensitively. Unknown names give QUIET
func FromString(l string) Level {
	for lvl, name := range levelNames {
		if strings.EqualFold(name, l) {
			return Level(lvl)
		}
	}

	return QUIET
}
