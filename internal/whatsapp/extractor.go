package whatsapp

import (
	"strings"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/leads"
)

const (
	leadMarker     = "SAVE_LEAD"
	fieldDelimiter = "|"
)

// ExtractLead scans a model reply for the lead marker. Without a marker the
// reply comes back unchanged with no record. With one, the trimmed text
// before the first marker becomes the user-visible reply and the payload
// after it is split into positional fields: name, phone, project type,
// budget, notes. The phone field is discarded; the transport-verified sender
// identity is authoritative and the caller fills it in. Missing trailing
// fields stay empty. The split is tolerant by design: a delimiter inside a
// field value shifts the positions and that is accepted, not repaired.
func ExtractLead(reply string) (string, *leads.Record) {
	idx := strings.Index(reply, leadMarker)
	if idx < 0 {
		return reply, nil
	}

	visible := strings.TrimSpace(reply[:idx])

	payload := strings.TrimSpace(reply[idx+len(leadMarker):])
	payload = strings.TrimPrefix(payload, fieldDelimiter)
	fields := strings.Split(payload, fieldDelimiter)

	field := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	return visible, &leads.Record{
		Name:        field(0),
		ProjectType: field(2),
		Budget:      field(3),
		Notes:       field(4),
	}
}
