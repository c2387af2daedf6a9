package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

// GeminiClient implements ModelClient using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient builds a Gemini-backed model client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ai: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", errors.New("ai: gemini requires at least one turn")
	}

	model := c.client.GenerativeModel(c.modelID)
	cs := model.StartChat()

	// All turns but the last become chat history. The instruction turn rides
	// in history as a user turn, the same way the seeded prompt did.
	for _, t := range turns[:len(turns)-1] {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		role := "user"
		if t.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(text)},
		})
	}

	last := turns[len(turns)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", fmt.Errorf("ai: gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("ai: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("ai: gemini returned empty content")
	}

	var reply strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}

	return strings.TrimSpace(reply.String()), nil
}

// LogAvailableModels logs every model that supports generateContent. Useful
// once at startup when diagnosing model-name drift in deployment logs.
func (c *GeminiClient) LogAvailableModels(ctx context.Context, logger *logging.Logger) {
	if logger == nil {
		logger = logging.Default()
	}

	it := c.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			return
		}
		if err != nil {
			logger.Warn("failed to list gemini models", "error", err)
			return
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				logger.Debug("gemini model available", "model", m.Name)
				break
			}
		}
	}
}

// Close releases resources held by the underlying client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
