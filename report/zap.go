package report

import (
	"context"

	"go.uber.org/zap"
)

type zapReporter struct {
	logger *zap.Logger
}

// Zap returns a Reporter logging each event at info level, with the
// event data as structured fields.
func Zap(logger *zap.Logger) Reporter {
	return &zapReporter{logger: logger}
}

func (r *zapReporter) Report(_ context.Context, e Event) {
	fields := make([]zap.Field, 0, 3)
	fields = append(fields, zap.Stringer("kind", e.Kind), zap.String("name", e.Name))
	switch e.Kind {
	case KindFinished:
		fields = append(fields, zap.Duration("elapsed", e.Elapsed))
	case KindCalling:
		fields = append(fields, zap.String("args", e.Args))
	case KindReturns:
		fields = append(fields, zap.String("result", e.Result))
	case KindCount:
		fields = append(fields, zap.Int64("count", e.Count))
	}
	r.logger.Info(e.Message, fields...)
}
