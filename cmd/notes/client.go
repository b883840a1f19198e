package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// apiClient talks to the meeting notes HTTP API
type apiClient struct {
	baseURL string
	http    *http.Client
}

// envelope mirrors the server's success and error response bodies
type envelope struct {
	Code    json.RawMessage   `json:"code"`
	Message string            `json:"message"`
	Info    string            `json:"info"`
	Details map[string]string `json:"details"`
	Data    json.RawMessage   `json:"data"`
}

// apiError is a non-2xx response from the API
type apiError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *apiError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		parts := make([]string, 0, len(e.Details))
		for k, v := range e.Details {
			parts = append(parts, k+"="+v)
		}
		sort.Strings(parts)
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	return msg
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (a *apiClient) get(ctx context.Context, path string) (json.RawMessage, error) {
	return a.do(ctx, http.MethodGet, path, nil, "")
}

func (a *apiClient) delete(ctx context.Context, path string) (json.RawMessage, error) {
	return a.do(ctx, http.MethodDelete, path, nil, "")
}

func (a *apiClient) postJSON(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	if body == nil {
		return a.do(ctx, http.MethodPost, path, nil, "")
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return a.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json")
}

// upload sends one file as the multipart field "file"
func (a *apiClient) upload(ctx context.Context, path, filePath string) (json.RawMessage, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	return a.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
}

func (a *apiClient) do(ctx context.Context, method, path string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &apiError{Status: resp.StatusCode, Code: http.StatusText(resp.StatusCode), Message: strings.TrimSpace(string(raw))}
		}
		return nil, fmt.Errorf("unexpected response from %s: %w", path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &apiError{
			Status:  resp.StatusCode,
			Code:    strings.Trim(string(env.Code), `"`),
			Message: env.Message,
			Details: env.Details,
		}
	}

	return env.Data, nil
}
