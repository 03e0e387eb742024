package llm

import "encoding/json"

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesRequest is the body of a messages API call.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// contentBlock is one block of a messages API response.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// messagesResponse is the subset of the messages API response that is read.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

// ProxyRequest is a caller-supplied messages request forwarded as-is.
// System and Messages are kept raw so any shape the API accepts passes through.
type ProxyRequest struct {
	Model     string          `json:"model,omitempty"`
	MaxTokens int             `json:"max_tokens,omitempty"`
	System    json.RawMessage `json:"system,omitempty"`
	Messages  json.RawMessage `json:"messages"`
}

// ProxyResponse is the upstream status and body of a forwarded request.
type ProxyResponse struct {
	StatusCode int
	Body       []byte
}
