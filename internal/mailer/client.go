// Package mailer sends transactional email through the SendGrid v3 API.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
)

type ClientInterface interface {
	Send(ctx context.Context, email Email) error
}

// Client wraps the SendGrid mail send endpoint. Transient failures (5xx,
// connection errors) are retried with backoff; the generation pipeline has
// no such policy, email delivery does.
type Client struct {
	cfg        *config.MailerEnvConfig
	httpClient *retryablehttp.Client
}

func NewClient(cfg *config.MailerEnvConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if cfg.SendgridAPIKey == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	if cfg.SendgridFromEmail == "" {
		return nil, fmt.Errorf("sendgrid from address is required")
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 4
	client.RetryWaitMin = 1 * time.Second
	client.RetryWaitMax = 10 * time.Second
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &Client{cfg: cfg, httpClient: client}, nil
}

// Send delivers one email to a single recipient.
func (c *Client) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return fmt.Errorf("mailer: recipient is required")
	}
	if email.Subject == "" {
		return fmt.Errorf("mailer: subject is required")
	}

	contents := []mailContent{}
	if email.Text != "" {
		contents = append(contents, mailContent{Type: "text/plain", Value: email.Text})
	}
	if email.HTML != "" {
		contents = append(contents, mailContent{Type: "text/html", Value: email.HTML})
	}
	if len(contents) == 0 {
		return fmt.Errorf("mailer: text or html content is required")
	}

	wire := mailSendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: email.To}}}},
		From:             emailAddress{Email: c.cfg.SendgridFromEmail, Name: c.cfg.SendgridFromName},
		Subject:          email.Subject,
		Content:          contents,
	}
	body, err := sonic.Marshal(wire)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SendgridBaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SendgridAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", email.To).Msg("mail send request failed")
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("mail send non-2xx")
		return fmt.Errorf("mail send status %d: %s", resp.StatusCode, string(raw))
	}

	log.Info().Str("to", email.To).Str("subject", email.Subject).Msg("email sent")
	return nil
}
