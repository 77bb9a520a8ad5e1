package textgen

import "context"

// GenerateRequest is the wire request accepted by the relay's /api/ai route.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse is the relay's wire response.
type GenerateResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// TokenSource supplies the bearer credential attached to each request. It is
// queried fresh per call; the client caches nothing.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token for every call. An empty token
// means unauthenticated requests.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}
