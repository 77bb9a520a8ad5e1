// Package relay hosts the thin HTTP server that forwards prompts to the
// external generative-language API.
package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
	"github.com/pathwise-app/pathwise/internal/gemini"
	"github.com/pathwise-app/pathwise/internal/textgen"
)

type Server struct {
	app      *fiber.App
	cfg      *config.RelayEnvConfig
	upstream gemini.ClientInterface
}

func NewServer(cfg *config.RelayEnvConfig, upstream gemini.ClientInterface) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if upstream == nil {
		return nil, fmt.Errorf("upstream client cannot be nil")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   cfg.BodySizeLimit,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigin}))
	app.Use(ZstdMiddleware())

	s := &Server{app: app, cfg: cfg, upstream: upstream}
	app.Get("/health", s.handleHealth)
	app.Post("/api/ai", AuthMiddleware(cfg.AuthJWTSecret), s.handleGenerate)
	return s, nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	var req textgen.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse generate request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prompt is required"})
	}

	requestID := uuid.NewString()
	started := time.Now()
	text, err := s.upstream.GenerateContent(c.Context(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("upstream generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate content"})
	}

	log.Info().
		Str("request_id", requestID).
		Int("prompt_len", len(req.Prompt)).
		Int("response_len", len(text)).
		Dur("elapsed", time.Since(started)).
		Msg("generated content")

	return c.JSON(textgen.GenerateResponse{Text: text})
}

// Start listens until ctx is cancelled, then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("relay server listen failed")
		}
	}()
	<-ctx.Done()
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }
