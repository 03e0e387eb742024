package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicVersion = "2023-06-01"
	// DefaultMaxTokens is used when a request does not set max_tokens.
	DefaultMaxTokens = 1024
)

// Client is a client for the Anthropic messages API.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxTokens  int
	ProxyModel string
	client     *http.Client
}

// NewClient creates a new messages API client.
// model and maxTokens are used by Generate; proxyModel is the default for Forward.
func NewClient(baseURL, apiKey, model string, maxTokens int, proxyModel string) *Client {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		MaxTokens:  maxTokens,
		ProxyModel: proxyModel,
		client:     http.DefaultClient,
	}
}

// Generate sends system and messages and returns the text of the first content block.
func (c *Client) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	payload := messagesRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		System:    system,
		Messages:  messages,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var msgResp messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("no content returned")
	}

	return msgResp.Content[0].Text, nil
}

// Forward sends req with the proxy defaults applied and returns the upstream status and body unchanged.
// An error is returned only when no upstream response was received.
func (c *Client) Forward(ctx context.Context, req ProxyRequest) (ProxyResponse, error) {
	if req.Model == "" {
		req.Model = c.ProxyModel
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = DefaultMaxTokens
	}
	if len(req.Messages) == 0 {
		req.Messages = json.RawMessage("[]")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return ProxyResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return ProxyResponse{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ProxyResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	return ProxyResponse{StatusCode: resp.StatusCode, Body: raw}, nil
}

func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/messages", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
