// Package gemini is a thin client for the Google Generative Language API.
package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
)

type ClientInterface interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	cfg    *config.GeminiEnvConfig
	client *resty.Client
}

func NewClient(cfg *config.GeminiEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client := resty.New().
		SetBaseURL(cfg.GeminiBaseURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(60 * time.Second)

	return &Client{cfg: cfg, client: client}, nil
}

// GenerateContent sends one prompt and returns the first candidate's text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	var out generateContentResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.cfg.GeminiAPIKey).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", c.cfg.GeminiModel))
	if err != nil {
		log.Error().Err(err).Msg("generate-content request failed")
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("generate-content non-2xx")
		return "", fmt.Errorf("generate-content status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate-content returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
