package telemetry

import "go.uber.org/zap"

// Zap adapts a *zap.Logger to the Logger interface. Callers pass it (or
// any other Logger implementation, or NoOp{}) through lexer.WithLogger or
// parser.WithLogger; the example drivers in cmd/ configure none.
type Zap struct {
	L *zap.Logger
}

// NewZap wraps l, or builds a default development logger if l is nil.
func NewZap(l *zap.Logger) Zap {
	if l == nil {
		built, err := zap.NewDevelopment()
		if err != nil {
			built = zap.NewNop()
		}
		l = built
	}
	return Zap{L: l}
}

func (z Zap) Warn(msg string, fields ...Field) {
	z.L.Warn(msg, toZapFields(fields)...)
}

func (z Zap) Debug(msg string, fields ...Field) {
	z.L.Debug(msg, toZapFields(fields)...)
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
