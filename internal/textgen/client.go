// Package textgen is the client for the AI relay's text generation endpoint.
package textgen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
)

// Client issues one outbound call per Generate invocation. It never retries:
// retry policy, if any, belongs to the caller.
type Client struct {
	httpClient *resty.Client
	tokens     TokenSource
}

func NewClient(cfg *config.ClientEnvConfig, tokens TokenSource) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("configuration cannot be nil")
	}

	cli := resty.New().
		SetBaseURL(cfg.TextGenURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.ClientTimeout)

	return &Client{httpClient: cli, tokens: tokens}, nil
}

// Generate sends the prompt to the relay and returns the raw model text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept-Encoding", "zstd").
		SetBody(GenerateRequest{Prompt: prompt})

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			log.Error().Err(err).Msg("credential source failed")
			return "", &Error{Kind: KindUnauthorized, cause: err}
		}
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}

	resp, err := req.Post("/api/ai")
	if err != nil {
		log.Error().Err(err).Msg("generate request failed")
		return "", &Error{Kind: classifyTransport(err), cause: err}
	}

	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("generate non-2xx")
		return "", &Error{Kind: classifyStatus(resp.StatusCode()), Status: resp.StatusCode(), Body: resp.String()}
	}

	data := resp.Body()
	if strings.Contains(strings.ToLower(resp.Header().Get("Content-Encoding")), "zstd") {
		data, err = decompressZstd(data)
		if err != nil {
			return "", &Error{Kind: KindUnknown, cause: err}
		}
	}

	var out GenerateResponse
	if err := sonic.Unmarshal(data, &out); err != nil {
		return "", &Error{Kind: KindUnknown, cause: err}
	}
	return out.Text, nil
}

func decompressZstd(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func classifyTransport(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindUnknown
}

func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindUnauthorized
	case status >= 500:
		return KindServiceUnavailable
	}
	return KindUnknown
}
