package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dateLayout = "2006-01-02"

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Database DatabaseConfig
	Auth     AuthConfig
	Trip     TripConfig
	AI       AIConfig
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"sqlite"` // "postgres" | "sqlite"
	PostgresURL string `env:"POSTGRES_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"boystrip.db"`
}

type AuthConfig struct {
	TripPassword  string        `env:"TRIP_PASSWORD" envDefault:"boysTrip2026"`
	AdminPassword string        `env:"ADMIN_PASSWORD"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTTTL        time.Duration `env:"JWT_TTL" envDefault:"720h"`
}

type TripConfig struct {
	StartDate          string `env:"TRIP_START_DATE" envDefault:"2026-02-27"`
	EndDate            string `env:"TRIP_END_DATE" envDefault:"2026-03-07"`
	Destination        string `env:"TRIP_DESTINATION" envDefault:"Cape Town"`
	Timezone           string `env:"TRIP_TIMEZONE" envDefault:"Africa/Johannesburg"`
	FeaturedEventTitle string `env:"FEATURED_EVENT_TITLE" envDefault:"myx! coming down south"`
}

type AIConfig struct {
	Provider     string `env:"AI_PROVIDER" envDefault:"openai"` // "openai" | "gemini"
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	// requests per minute across all AI endpoints, 0 disables the limit
	RatePerMinute int `env:"AI_RATE_PER_MINUTE" envDefault:"30"`
}

type StorageConfig struct {
	Bucket      string        `env:"S3_BUCKET"`
	Region      string        `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint    string        `env:"S3_ENDPOINT"`
	AccessKey   string        `env:"S3_ACCESS_KEY"`
	SecretKey   string        `env:"S3_SECRET_KEY"`
	UploadTTL   time.Duration `env:"S3_UPLOAD_TTL" envDefault:"15m"`
	DownloadTTL time.Duration `env:"S3_DOWNLOAD_TTL" envDefault:"1h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case "postgres":
		if c.Database.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch strings.ToLower(c.AI.Provider) {
	case "openai", "gemini":
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}

	if c.Auth.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}

	start, end, err := c.Trip.Dates()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errors.New("TRIP_END_DATE is before TRIP_START_DATE")
	}

	return nil
}

// Location falls back to UTC when the zone database does not know Timezone.
func (t TripConfig) Location() *time.Location {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Dates returns the first and last trip day at midnight in the trip timezone.
func (t TripConfig) Dates() (time.Time, time.Time, error) {
	loc := t.Location()
	start, err := time.ParseInLocation(dateLayout, t.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid TRIP_START_DATE: %w", err)
	}
	end, err := time.ParseInLocation(dateLayout, t.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid TRIP_END_DATE: %w", err)
	}
	return start, end, nil
}
