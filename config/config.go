package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds everything the application reads from the environment.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	AdminEmails    []string
	GoogleClientID string
	S3Bucket       string
	FrontendURL    string
	CORSOrigins    []string

	FromEmail         string
	FromEmailPassword string
	SMTPHost          string
	SMTPAddress       string
}

// Load reads the configuration from environment variables. JWT_SECRET is the
// only hard requirement; everything else has a default or degrades a feature.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    os.Getenv("DB_DSN"),
		JWTSecret:      secret,
		TokenTTL:       time.Hour,
		AdminEmails:    splitAndNormalize(os.Getenv("ADMIN_EMAILS")),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		S3Bucket:       getEnv("S3_BUCKET", "velmart"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:4200"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:4200")),

		FromEmail:         os.Getenv("FROM_EMAIL"),
		FromEmailPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
		SMTPHost:          os.Getenv("FROM_EMAIL_SMTP"),
		SMTPAddress:       os.Getenv("SMTP_ADDRESS"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration")
		}
		cfg.TokenTTL = parsed
	}

	return cfg, nil
}

// GoogleAuthEnabled reports whether Google sign-in is configured.
func (c *Config) GoogleAuthEnabled() bool {
	return c.GoogleClientID != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitAndNormalize lower-cases entries so the admin allowlist is matched
// case-insensitively.
func splitAndNormalize(value string) []string {
	parts := splitList(value)
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return parts
}
