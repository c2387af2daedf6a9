package whatsapp

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

// Handler terminates Twilio WhatsApp webhooks.
type Handler struct {
	svc    Service
	logger *logging.Logger
}

// NewHandler builds the webhook handler.
func NewHandler(svc Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// HandleMessage handles POST /whatsapp. Twilio posts form-encoded Body/From
// and renders whatever TwiML comes back, so every path answers 200 with a
// reply envelope; internal failures are already absorbed into the reply text.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	body := strings.TrimSpace(r.FormValue("Body"))
	from := r.FormValue("From")

	reply := h.svc.HandleIncoming(r.Context(), from, body)

	writeTwiML(w, reply)
}

func writeTwiML(w http.ResponseWriter, message string) {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(message))

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Response><Message>%s</Message></Response>`, escaped.String())
}
