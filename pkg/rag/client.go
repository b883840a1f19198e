package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// Client talks to the hosted knowledge-base API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a knowledge-base client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewClient(cfg *config.KnowledgeBaseConfig) *Client {
	var apiKey, base string
	timeout := 60 * time.Second
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("KB_API_KEY")
	}
	if base == "" {
		base = os.Getenv("KB_BASE_URL")
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type listResponse struct {
	Success   bool            `json:"success"`
	Documents json.RawMessage `json:"documents"`
	Error     string          `json:"error"`
}

type opResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DeleteRequest is the body of a delete call
type DeleteRequest struct {
	FileNames []string `json:"fileNames"`
}

func (c *Client) documentsURL(corpusID string) string {
	return fmt.Sprintf("%s/v1/rag/%s/documents", c.baseURL, url.PathEscape(corpusID))
}

// ListDocuments returns the corpus listing. A documents field that is not an
// array reads as no listing.
func (c *Client) ListDocuments(ctx context.Context, corpusID string) (*entities.DocumentListResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentsURL(corpusID), nil)
	if err != nil {
		return nil, err
	}

	var lr listResponse
	if err := c.do(req, &lr); err != nil {
		return nil, err
	}

	result := &entities.DocumentListResult{Success: lr.Success, Error: lr.Error}
	var docs []entities.Document
	if len(lr.Documents) > 0 && json.Unmarshal(lr.Documents, &docs) == nil && docs != nil {
		result.Documents = docs
	}
	return result, nil
}

// Upload sends one file as multipart form field "file"
func (c *Client) Upload(ctx context.Context, corpusID string, file *entities.DocumentFile) (*entities.DocumentOpResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.documentsURL(corpusID), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var or opResponse
	if err := c.do(req, &or); err != nil {
		return nil, err
	}
	return opResult(or), nil
}

// Delete removes the named files from the corpus
func (c *Client) Delete(ctx context.Context, corpusID string, fileNames []string) (*entities.DocumentOpResult, error) {
	b, err := json.Marshal(DeleteRequest{FileNames: fileNames})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.documentsURL(corpusID), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var or opResponse
	if err := c.do(req, &or); err != nil {
		return nil, err
	}
	return opResult(or), nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("x-api-key", c.apiKey)
	if requestID, ok := jobcontext.GetRequestID(req.Context()); ok {
		req.Header.Set("X-Request-ID", requestID.String())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("knowledge base returned status %d with undecodable body: %w", resp.StatusCode, err)
	}
	return nil
}

func opResult(or opResponse) *entities.DocumentOpResult {
	res := &entities.DocumentOpResult{Success: or.Success, Error: or.Error}
	if !res.Success && res.Error == "" {
		res.Error = or.Message
	}
	return res
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
