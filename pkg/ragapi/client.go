package ragapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// StatusError is returned for any non-2xx backend response. Message holds the
// backend's "error" field when it sent one.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
}

// BackendMessage extracts the backend-provided error text from err, if any.
func BackendMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient builds a backend client. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Upload(ctx context.Context, filename, mediaType string, content io.Reader) (*UploadResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	header.Set("Content-Type", mediaType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("write form part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var res UploadResponse
	if err := c.do(req, "upload", &res); err != nil {
		return nil, err
	}
	// A 2xx body with an error field is still a failure.
	if res.Error != "" {
		return nil, &StatusError{Endpoint: "upload", StatusCode: http.StatusOK, Message: res.Error}
	}
	return &res, nil
}

func (c *Client) ListDocuments(ctx context.Context) (*ListDocumentsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/list-documents", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var res ListDocumentsResponse
	if err := c.do(req, "list-documents", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ReindexAll(ctx context.Context) (*ReindexAllResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/reindex-all", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var res ReindexAllResponse
	if err := c.do(req, "reindex-all", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Chat sends the query with its history; history is encoded to a JSON string.
func (c *Client) Chat(ctx context.Context, query string, history []HistoryMessage) (*ChatResponse, error) {
	if history == nil {
		history = []HistoryMessage{}
	}
	historyBytes, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}

	payloadBytes, err := json.Marshal(ChatRequest{Query: query, History: string(historyBytes)})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	var res ChatResponse
	if err := c.do(req, "chat", &res); err != nil {
		return nil, err
	}
	if res.Contexts == nil {
		res.Contexts = []Context{}
	}
	return &res, nil
}

// Ping calls the backend test endpoint and returns its greeting.
func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/test", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(req, "test", &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) do(req *http.Request, endpoint string, out interface{}) error {
	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(bodyBytes, &eb)
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: eb.Error}
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
