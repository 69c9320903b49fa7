package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/logger"
)

// Request is the wire contract sent to an advisory endpoint.
type Request struct {
	InstructionText string          `json:"instructionText"`
	RoleTag         domain.UserRole `json:"roleTag"`
	ContextSnapshot Snapshot        `json:"contextSnapshot"`
}

type Response struct {
	ResultText string `json:"resultText"`
}

// HTTPGateway posts Request as JSON to a single endpoint. One attempt, no retries.
type HTTPGateway struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPGateway(endpoint, apiKey string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) Advise(ctx context.Context, instruction string, role domain.UserRole, snapshot Snapshot) string {
	logger.ExternalServiceCall("advisor-http", "advise", "role", role, "endpoint", g.endpoint)
	text, err := g.post(ctx, Request{InstructionText: instruction, RoleTag: role, ContextSnapshot: snapshot})
	logger.ExternalServiceResult("advisor-http", "advise", err, "role", role)
	if err != nil {
		return FallbackMessage
	}
	if strings.TrimSpace(text) == "" {
		return EmptyAnswerMessage
	}
	return text
}

func (g *HTTPGateway) post(ctx context.Context, body Request) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode advisory request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("advisory endpoint error: status %d, body: %s", resp.StatusCode, msg)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode advisory response: %w", err)
	}
	return out.ResultText, nil
}
