package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("SESSION_EXPIRATION", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 24*time.Hour, cfg.Session.Expiration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
}

func TestSessionSecureFollowsEnv(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		secure string
		want   bool
	}{
		{"development default", "development", "", false},
		{"production default", "production", "", true},
		{"production override", "production", "false", false},
		{"development override", "development", "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("SESSION_SECURE", tt.secure)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Session.Secure)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("SESSION_EXPIRATION", "30m")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 30*time.Minute, cfg.Session.Expiration)
	assert.Equal(t, 12, cfg.Hash.BcryptCost)
}

func TestGetDurationRejectsGarbage(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, time.Minute, getDuration("SOME_DURATION", time.Minute))

	t.Setenv("SOME_DURATION", "-5s")
	assert.Equal(t, time.Minute, getDuration("SOME_DURATION", time.Minute))
}

func TestCorsOriginList(t *testing.T) {
	app := AppConfig{CorsOrigins: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, app.CorsOriginList())
}
