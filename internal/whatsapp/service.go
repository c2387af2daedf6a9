package whatsapp

import (
	"context"
	"time"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/leads"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

type service struct {
	store   *SessionStore
	gateway *Gateway
	sink    leads.Sink
	logger  *logging.Logger
	now     func() time.Time
}

// NewService wires the session store, model gateway and lead sink into the
// per-message pipeline.
func NewService(store *SessionStore, gateway *Gateway, sink leads.Sink, logger *logging.Logger) Service {
	if logger == nil {
		logger = logging.Default()
	}
	if sink == nil {
		sink = leads.NopSink{}
	}
	return &service{
		store:   store,
		gateway: gateway,
		sink:    sink,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *service) HandleIncoming(ctx context.Context, sender, body string) string {
	s.logger.Info("inbound message", "sender", sender, "chars", len(body))

	sess := s.store.GetOrCreate(sender)
	reply := s.gateway.Send(ctx, sess, body)

	visible, rec := ExtractLead(reply)
	if rec != nil {
		rec.Phone = sender
		rec.CapturedAt = s.now()
		if err := s.sink.Append(ctx, *rec); err != nil {
			s.logger.Error("failed to persist lead", "error", err, "sender", sender)
		} else {
			s.logger.Info("lead captured", "sender", sender, "name", rec.Name, "project_type", rec.ProjectType)
		}
	}

	return visible
}
