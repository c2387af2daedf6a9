package whatsapp

import "context"

// Service orchestrates one inbound message: session resolution, the model
// exchange, lead extraction and best-effort persistence. It always returns a
// reply for the sender; internal failures degrade to fallback text.
type Service interface {
	HandleIncoming(ctx context.Context, sender, body string) string
}
