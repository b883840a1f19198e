package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// maxErrorBody bounds how much of an undecodable reply is quoted in errors
const maxErrorBody = 512

// AgentClient is a minimal client for the hosted agent chat API
type AgentClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAgentClient creates an agent client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewAgentClient(cfg *config.AgentConfig) *AgentClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("AGENT_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("AGENT_BASE_URL")
	}

	timeout := 120 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &AgentClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ChatRequest is the body of an agent chat call
type ChatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the wire shape of an agent reply. Response and Error are
// decoded leniently since agents do not always honor the documented types.
type chatResponse struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response"`
	Error    json.RawMessage `json:"error"`
}

// Send posts message to the agent identified by targetID
func (a *AgentClient) Send(ctx context.Context, message string, targetID string) (*entities.AgentResult, error) {
	b, err := json.Marshal(ChatRequest{Message: message})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/agents/%s/chat", a.baseURL, url.PathEscape(targetID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	if requestID, ok := jobcontext.GetRequestID(ctx); ok {
		req.Header.Set("X-Request-ID", requestID.String())
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent response: %w", err)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("agent returned status %d with undecodable body %q: %w",
			resp.StatusCode, truncate(string(body), maxErrorBody), err)
	}

	result := &entities.AgentResult{
		Success:  cr.Success,
		Response: decodeEnvelope(cr.Response),
		Error:    decodeErrorText(cr.Error),
	}
	if resp.StatusCode >= 400 && result.Success {
		result.Success = false
	}
	if !result.Success && result.Error == "" && resp.StatusCode >= 400 {
		result.Error = fmt.Sprintf("agent returned status %d", resp.StatusCode)
	}
	return result, nil
}

// decodeEnvelope keeps object responses; anything else reads as no envelope
func decodeEnvelope(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	return envelope
}

// decodeErrorText accepts a string, an object with a message, or any other JSON value
func decodeErrorText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return string(raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
