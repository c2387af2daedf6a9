package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
)

// Turn roles. Instruction is the seeded persona/policy turn; providers map it
// to whatever their API calls a system message.
const (
	RoleInstruction = "instruction"
	RoleUser        = "user"
	RoleAssistant   = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role string
	Text string
}

// ModelClient generates a reply for the given turn history. The last turn is
// the live user message; everything before it is context.
type ModelClient interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}

// ErrRateLimited marks a transient quota rejection from the provider.
var ErrRateLimited = errors.New("ai: rate limited")

// IsRateLimited reports whether err is a provider rate-limit rejection,
// either the package sentinel or a wrapped provider 429.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 429 {
		return true
	}

	var oerr *openai.APIError
	if errors.As(err, &oerr) && oerr.HTTPStatusCode == 429 {
		return true
	}

	return false
}
