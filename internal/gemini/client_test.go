package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pathwise-app/pathwise/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(&config.GeminiEnvConfig{
		GeminiAPIKey:  "test-key",
		GeminiBaseURL: ts.URL,
		GeminiModel:   "gemini-1.5-flash",
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(nil); err == nil {
		t.Fatal("expected error when cfg is nil")
	}
	if _, err := NewClient(&config.GeminiEnvConfig{}); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestGenerateContent_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-1.5-flash:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"text":"the prompt"`) {
			t.Errorf("unexpected request body: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"the answer"}]}}]}`))
	})

	text, err := c.GenerateContent(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if text != "the answer" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateContent_HTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	})

	if _, err := c.GenerateContent(context.Background(), "p"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := c.GenerateContent(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
