package relay

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pathwise-app/pathwise/internal/config"
)

type fakeUpstream struct {
	text string
	err  error
}

func (f *fakeUpstream) GenerateContent(context.Context, string) (string, error) {
	return f.text, f.err
}

func newTestServer(t *testing.T, cfg *config.RelayEnvConfig, upstream *fakeUpstream) *Server {
	t.Helper()
	if cfg == nil {
		cfg = &config.RelayEnvConfig{BodySizeLimit: 1 << 20, AllowedOrigin: "*"}
	}
	s, err := NewServer(cfg, upstream)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

func postAI(t *testing.T, s *Server, body, bearer string) (*fiber.Map, int) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/ai", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	out := &fiber.Map{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal response %q: %v", raw, err)
		}
	}
	return out, resp.StatusCode
}

func TestNewServer_NilArgs(t *testing.T) {
	if _, err := NewServer(nil, &fakeUpstream{}); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := NewServer(&config.RelayEnvConfig{}, nil); err == nil {
		t.Fatal("expected error for nil upstream")
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, &fakeUpstream{})
	resp, err := s.App().Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGenerate_Success(t *testing.T) {
	s := newTestServer(t, nil, &fakeUpstream{text: "generated text"})
	out, status := postAI(t, s, `{"prompt":"do the thing"}`, "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if (*out)["text"] != "generated text" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	s := newTestServer(t, nil, &fakeUpstream{})
	_, status := postAI(t, s, `{"prompt":""}`, "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestGenerate_InvalidBody(t *testing.T) {
	s := newTestServer(t, nil, &fakeUpstream{})
	_, status := postAI(t, s, `not json`, "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	s := newTestServer(t, nil, &fakeUpstream{err: errors.New("quota exhausted")})
	out, status := postAI(t, s, `{"prompt":"p"}`, "")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if (*out)["error"] != "Failed to generate content" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestGenerate_Auth(t *testing.T) {
	const secret = "test-secret"
	cfg := &config.RelayEnvConfig{BodySizeLimit: 1 << 20, AllowedOrigin: "*", AuthJWTSecret: secret}
	s := newTestServer(t, cfg, &fakeUpstream{text: "ok"})

	t.Run("missing token rejected", func(t *testing.T) {
		_, status := postAI(t, s, `{"prompt":"p"}`, "")
		if status != fiber.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", status)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, status := postAI(t, s, `{"prompt":"p"}`, "not-a-jwt")
		if status != fiber.StatusForbidden {
			t.Fatalf("expected 403, got %d", status)
		}
	})

	t.Run("token signed with wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "someone-else")
		_, status := postAI(t, s, `{"prompt":"p"}`, token)
		if status != fiber.StatusForbidden {
			t.Fatalf("expected 403, got %d", status)
		}
	})

	t.Run("valid token accepted", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		out, status := postAI(t, s, `{"prompt":"p"}`, token)
		if status != fiber.StatusOK {
			t.Fatalf("expected 200, got %d: %+v", status, out)
		}
	})

	t.Run("health stays open", func(t *testing.T) {
		resp, err := s.App().Test(httptest.NewRequest("GET", "/health", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	})
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("a-different-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
