// Package config defines environment configuration structs and loaders.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RelayEnvConfig
	ReminderEnvConfig
	GeminiEnvConfig
	ClientEnvConfig
	MailerEnvConfig
}

func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RelayEnvConfig configures the AI relay server.
type RelayEnvConfig struct {
	Address       string `env:"RELAY_ADDRESS" envDefault:"0.0.0.0"`
	Port          int    `env:"RELAY_PORT" envDefault:"3001"`
	BodySizeLimit int    `env:"RELAY_BODY_LIMIT" envDefault:"1048576"`
	AllowedOrigin string `env:"RELAY_ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
	// When empty, bearer authentication is disabled and /api/ai is open.
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`
}

// ReminderEnvConfig configures the email reminder server.
type ReminderEnvConfig struct {
	Address        string `env:"REMINDER_ADDRESS" envDefault:"0.0.0.0"`
	Port           int    `env:"REMINDER_PORT" envDefault:"3003"`
	AllowedOrigin  string `env:"REMINDER_ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
}

// GeminiEnvConfig configures upstream Generative Language API access.
type GeminiEnvConfig struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
}

// ClientEnvConfig configures the generation gateway client.
type ClientEnvConfig struct {
	TextGenURL    string        `env:"TEXTGEN_URL" envDefault:"http://localhost:3001"`
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
}

// MailerEnvConfig configures SendGrid access.
type MailerEnvConfig struct {
	SendgridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendgridBaseURL   string `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
	SendgridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	SendgridFromName  string `env:"SENDGRID_FROM_NAME"`
}
