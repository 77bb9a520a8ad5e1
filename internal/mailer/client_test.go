package mailer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise-app/pathwise/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(&config.MailerEnvConfig{
		SendgridAPIKey:    "sg-key",
		SendgridBaseURL:   ts.URL,
		SendgridFromEmail: "noreply@pathwise.app",
		SendgridFromName:  "Pathwise",
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(nil)
	assert.Error(t, err)

	_, err = NewClient(&config.MailerEnvConfig{SendgridFromEmail: "a@b.c"})
	assert.Error(t, err, "missing api key")

	_, err = NewClient(&config.MailerEnvConfig{SendgridAPIKey: "k"})
	assert.Error(t, err, "missing from address")
}

func TestSend_WireFormat(t *testing.T) {
	var got mailSendRequest
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/mail/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, sonic.Unmarshal(body, &got))
		w.WriteHeader(http.StatusAccepted)
	})

	err := c.Send(context.Background(), Email{
		To:      "student@example.com",
		Subject: "Weekly goals reminder",
		Text:    "You have 2 goals due this week.",
		HTML:    "<p>You have 2 goals due this week.</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sg-key", auth)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "student@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "noreply@pathwise.app", got.From.Email)
	assert.Equal(t, "Weekly goals reminder", got.Subject)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Equal(t, "text/html", got.Content[1].Type)
}

func TestSend_FieldValidation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent for invalid emails")
	})

	assert.Error(t, c.Send(context.Background(), Email{Subject: "s", Text: "t"}), "missing recipient")
	assert.Error(t, c.Send(context.Background(), Email{To: "a@b.c", Text: "t"}), "missing subject")
	assert.Error(t, c.Send(context.Background(), Email{To: "a@b.c", Subject: "s"}), "missing content")
}

func TestSend_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})
	c.httpClient.RetryWaitMin = 0
	c.httpClient.RetryWaitMax = 0

	err := c.Send(context.Background(), Email{To: "a@b.c", Subject: "s", Text: "t"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSend_PermanentFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"message":"bad from address"}]}`))
	})

	err := c.Send(context.Background(), Email{To: "a@b.c", Subject: "s", Text: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
