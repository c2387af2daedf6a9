package whatsapp

import (
	"context"
	"time"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/ai"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

// Fallback replies. Twilio enforces a short webhook timeout, so the retry
// budget is deliberately small: return something promptly rather than keep
// retrying.
const (
	ApologyReply = "I apologize, I am currently connecting to our architectural database. Please try again in a moment."
	BusyReply    = "Our assistant is helping several clients at the moment. Please try again in a few minutes."
)

const (
	retryDelay  = 5 * time.Second
	maxAttempts = 2
)

// Gateway sends a user message through the model within a session, with a
// bounded retry on rate-limit rejections.
type Gateway struct {
	model  ai.ModelClient
	sleep  func(time.Duration)
	logger *logging.Logger
}

// NewGateway builds a gateway over the given model client.
func NewGateway(model ai.ModelClient, logger *logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		model:  model,
		sleep:  time.Sleep,
		logger: logger,
	}
}

// Send runs one exchange for the session's sender and returns the reply text.
// It never returns an error: model failures degrade to the fixed fallback
// replies. The user and assistant turns are committed only on success, so a
// failed attempt leaves the history untouched.
//
// Send holds the session lock for the whole exchange, retry delay included.
// That serializes rapid double-sends from one sender while other senders
// proceed in parallel.
func (g *Gateway) Send(ctx context.Context, sess *Session, userText string) string {
	sess.Lock()
	defer sess.Unlock()

	history := sess.historyWith(userText)

	for attempt := 1; ; attempt++ {
		reply, err := g.model.Generate(ctx, history)
		if err == nil {
			sess.commit(userText, reply)
			return reply
		}

		if !ai.IsRateLimited(err) {
			g.logger.Error("model call failed", "error", err, "sender", sess.Sender())
			return ApologyReply
		}
		if attempt >= maxAttempts {
			g.logger.Warn("model rate limited, retries exhausted", "sender", sess.Sender(), "attempts", attempt)
			return BusyReply
		}

		g.logger.Warn("model rate limited, retrying", "sender", sess.Sender(), "delay", retryDelay)
		g.sleep(retryDelay)
	}
}
