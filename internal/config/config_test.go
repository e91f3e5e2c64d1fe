package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "configured-at-startup")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, "blog", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL.Duration())
	assert.Equal(t, "images", cfg.Upload.ImagesDir)
	assert.Equal(t, "configured-at-startup", cfg.Auth.JWTSecret)
}

func TestLoadBareSecondsDuration(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_READ_TIMEOUT", "15")
	t.Setenv("JWT_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL.Duration())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	// t.Setenv registers the restore; the variable must be absent for Load.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"10s", 10 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"10", 10 * time.Second, false},
		{`"10s"`, 10 * time.Second, false},
		{"", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
