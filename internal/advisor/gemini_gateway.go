package advisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
)

// GeminiConfig configures the Gemini API client. BaseURL and HTTPClient are
// empty in production.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiGateway asks a Gemini model through the Gemini Developer API.
type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiGateway(ctx context.Context, cfg GeminiConfig) (*GeminiGateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiGateway{client: client, model: strings.TrimPrefix(cfg.Model, "models/")}, nil
}

func (g *GeminiGateway) Advise(ctx context.Context, instruction string, role domain.UserRole, snapshot Snapshot) string {
	logger.ExternalServiceCall("advisor-gemini", "generateContent", "role", role, "model", g.model)
	text, err := g.generate(ctx, instruction, role, snapshot)
	logger.ExternalServiceResult("advisor-gemini", "generateContent", err, "role", role)
	if err != nil {
		return FallbackMessage
	}
	if strings.TrimSpace(text) == "" {
		return EmptyAnswerMessage
	}
	return text
}

func (g *GeminiGateway) generate(ctx context.Context, instruction string, role domain.UserRole, snapshot Snapshot) (string, error) {
	system, err := SystemInstruction(role, snapshot)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: instruction}}},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				sb.WriteString(part.Text)
			}
		}
		break
	}
	return sb.String(), nil
}
