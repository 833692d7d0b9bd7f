package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap.Logger to Logger. Names from context are joined into the logger name,
// fields are passed as typed zap fields.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := zapLevel(LevelFromContext(ctx))
	ce := z.l.Named(strings.Join(NamesFromContext(ctx), ".")).Check(lvl, msg)
	if ce == nil {
		return
	}
	ce.Write(zapFields(fields)...)
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i := range fields {
		zapFields[i] = zapField(fields[i])
	}

	return zapFields
}

func zapField(f Field) zap.Field {
	switch f.Type() {
	case IntType:
		return zap.Int(f.Key(), f.IntValue())
	case Int64Type:
		return zap.Int64(f.Key(), f.Int64Value())
	case StringType:
		return zap.String(f.Key(), f.StringValue())
	case BoolType:
		return zap.Bool(f.Key(), f.BoolValue())
	case DurationType:
		return zap.Duration(f.Key(), f.DurationValue())
	case StringsType:
		return zap.Strings(f.Key(), f.StringsValue())
	case ErrorType:
		return zap.NamedError(f.Key(), f.ErrorValue())
	case StringerType:
		return zap.Stringer(f.Key(), f.Stringer())
	default:
		return zap.Any(f.Key(), f.AnyValue())
	}
}
