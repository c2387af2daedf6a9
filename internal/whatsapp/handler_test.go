package whatsapp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWebhook(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, h)

	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandleMessageRepliesWithEnvelope(t *testing.T) {
	model := &fakeModel{replies: []string{"Welcome to NSM Architects. What is your name?"}}
	svc := newTestService(model, &recordingSink{})
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{
		"Body": {"hello"},
		"From": {"whatsapp:+27821234567"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/xml", rr.Header().Get("Content-Type"))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?><Response><Message>Welcome to NSM Architects. What is your name?</Message></Response>`,
		rr.Body.String())
}

func TestHandleMessageSinksLeadFromWebhook(t *testing.T) {
	model := &fakeModel{replies: []string{"Thanks John. SAVE_LEAD|John Smith|Unknown|Residential|R2m|Wants a kitchen"}}
	sink := &recordingSink{}
	svc := newTestService(model, sink)
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{
		"Body": {"that's everything"},
		"From": {"whatsapp:+27821234567"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<Message>Thanks John.</Message>")
	assert.NotContains(t, rr.Body.String(), "SAVE_LEAD")
	require.Len(t, sink.records, 1)
	assert.Equal(t, "whatsapp:+27821234567", sink.records[0].Phone)
}

func TestHandleMessageSinkFailureStillReplies(t *testing.T) {
	model := &fakeModel{replies: []string{"Thanks Jane. SAVE_LEAD|Jane|x|Commercial|R5m|offices"}}
	svc := newTestService(model, &recordingSink{err: assert.AnError})
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{
		"Body": {"done"},
		"From": {"whatsapp:+27820000000"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<Message>Thanks Jane.</Message>")
}

func TestHandleMessageModelFailureStillHTTP200(t *testing.T) {
	model := &fakeModel{errs: []error{assert.AnError}}
	svc := newTestService(model, &recordingSink{})
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{
		"Body": {"hello"},
		"From": {"whatsapp:+27820000000"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), ApologyReply)
}

func TestHandleMessageEscapesReplyText(t *testing.T) {
	model := &fakeModel{replies: []string{`Budgets <R1m & >R5m are "fine"`}}
	svc := newTestService(model, &recordingSink{})
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{
		"Body": {"budget?"},
		"From": {"whatsapp:+27820000000"},
	})

	body := rr.Body.String()
	assert.Contains(t, body, "&lt;R1m &amp; &gt;R5m")
	assert.NotContains(t, body, `<R1m`)
}

func TestHandleMessageEmptyBodyAccepted(t *testing.T) {
	model := &fakeModel{replies: []string{"Hello! How can I help?"}}
	svc := newTestService(model, &recordingSink{})
	h := NewHandler(svc, nil)

	rr := postWebhook(t, h, url.Values{"From": {"whatsapp:+27820000000"}})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<Message>Hello! How can I help?</Message>")
}
