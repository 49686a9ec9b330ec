package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("AI_PROVIDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "boysTrip2026", cfg.Auth.TripPassword)
	assert.Equal(t, 720*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 15*time.Minute, cfg.Storage.UploadTTL)
	assert.Equal(t, "Cape Town", cfg.Trip.Destination)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 30, cfg.AI.RatePerMinute)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost/trip")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("TRIP_START_DATE", "2026-01-01")
	t.Setenv("TRIP_END_DATE", "2026-01-03")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost/trip", cfg.Database.PostgresURL)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, time.Hour, cfg.Auth.JWTTTL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: "sqlite"},
			Auth:     AuthConfig{JWTTTL: time.Hour},
			AI:       AIConfig{Provider: "openai"},
			Trip:     TripConfig{StartDate: "2026-02-27", EndDate: "2026-03-07", Timezone: "UTC"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "postgres without url", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: true},
		{name: "unknown provider", mutate: func(c *Config) { c.AI.Provider = "anthropic" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.JWTTTL = 0 }, wantErr: true},
		{name: "bad date", mutate: func(c *Config) { c.Trip.StartDate = "27/02/2026" }, wantErr: true},
		{name: "end before start", mutate: func(c *Config) { c.Trip.EndDate = "2026-02-01" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripConfig_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	tc := TripConfig{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.UTC, tc.Location())
}
