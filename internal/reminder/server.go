// Package reminder hosts the HTTP server that relays reminder emails.
package reminder

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
	"github.com/pathwise-app/pathwise/internal/mailer"
)

// SendReminderRequest mirrors the frontend's reminder payload. The recipient
// is fixed server-side; callers only control subject and body.
type SendReminderRequest struct {
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type Server struct {
	app  *fiber.App
	cfg  *config.ReminderEnvConfig
	mail mailer.ClientInterface
}

func NewServer(cfg *config.ReminderEnvConfig, mail mailer.ClientInterface) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if mail == nil {
		return nil, fmt.Errorf("mail client cannot be nil")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigin}))

	s := &Server{app: app, cfg: cfg, mail: mail}
	app.Get("/health", s.handleHealth)
	app.Post("/send-reminder", s.handleSendReminder)
	return s, nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleSendReminder(c *fiber.Ctx) error {
	if s.cfg.RecipientEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Recipient email not configured on server."})
	}

	var req SendReminderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse reminder request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Subject == "" || (req.Text == "" && req.HTML == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required email fields"})
	}

	err := s.mail.Send(c.Context(), mailer.Email{
		To:      s.cfg.RecipientEmail,
		Subject: req.Subject,
		Text:    req.Text,
		HTML:    req.HTML,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send reminder email")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send email"})
	}

	return c.JSON(fiber.Map{"message": "Email sent successfully"})
}

// Start listens until ctx is cancelled, then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("reminder server listen failed")
		}
	}()
	<-ctx.Done()
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }
