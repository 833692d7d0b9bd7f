package log

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

const dateLayout = "2006-01-02 15:04:05.000"

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

type simpleLoggerOption interface {
	applySimpleOption(l *defaultLogger)
}

// Default returns a Logger which writes one line per message into w:
//
//	2024-04-04 12:30:00.000 DEBUG rowset.identity reconciled id=e1 hit=true
func Default(w io.Writer, opts ...simpleLoggerOption) *defaultLogger {
	l := &defaultLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applySimpleOption(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

func (l *defaultLogger) line(names []string, lvl Level, msg string, fields []Field) string {
	b := xstring.Buffer()
	defer b.Free()

	if l.coloring {
		b.WriteString(lvl.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	b.WriteString(lvl.String())
	b.WriteByte(' ')
	b.WriteString(strings.Join(names, "."))
	b.WriteByte(' ')
	b.WriteString(msg)
	for i := range fields {
		b.WriteByte(' ')
		b.WriteString(fields[i].Key())
		b.WriteByte('=')
		b.WriteString(quoteValue(fields[i].String()))
	}
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}

// quoteValue quotes v if it cannot be read back as a single token
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " =\"\t\r\n") {
		return strconv.Quote(v)
	}

	return v
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}
	s := l.line(NamesFromContext(ctx), lvl, msg, fields)

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = io.WriteString(l.w, s+"\n")
}

// wrapper holds options of trace adapters around user Logger
type wrapper struct {
	logQuery bool
	clock    clockwork.Clock
	logger   Logger
}

func wrapLogger(l Logger, opts ...Option) *wrapper {
	w := &wrapper{
		logger: l,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applyHolderOption(w)
		}
	}

	return w
}

func (w *wrapper) Log(ctx context.Context, msg string, fields ...Field) {
	w.logger.Log(ctx, msg, fields...)
}
