package leads

import (
	"context"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

// Sink persists lead records. Implementations are best-effort collaborators;
// callers log and swallow append failures.
type Sink interface {
	Append(ctx context.Context, rec Record) error
}

// NopSink discards records. Used when no store is available at startup so the
// rest of the pipeline keeps working.
type NopSink struct{}

func (NopSink) Append(context.Context, Record) error { return nil }

// MultiSink fans a record out to every configured sink. Each sink gets its
// own attempt; failures are logged and never propagated.
type MultiSink struct {
	sinks  []Sink
	logger *logging.Logger
}

// NewMultiSink builds a fan-out sink over the given sinks.
func NewMultiSink(logger *logging.Logger, sinks ...Sink) *MultiSink {
	if logger == nil {
		logger = logging.Default()
	}
	return &MultiSink{sinks: sinks, logger: logger}
}

func (m *MultiSink) Append(ctx context.Context, rec Record) error {
	for _, s := range m.sinks {
		if err := s.Append(ctx, rec); err != nil {
			m.logger.Error("lead sink append failed", "error", err, "phone", rec.Phone)
		}
	}
	return nil
}
