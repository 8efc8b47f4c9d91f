package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TWITCH_CLIENT_ID", "client")
		t.Setenv("TWITCH_CLIENT_SECRET", "secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "client", cfg.Twitch.ClientID)
		assert.Equal(t, "secret", cfg.Twitch.ClientSecret)
		assert.Equal(t, "8080", cfg.Service.Port)
		assert.Equal(t, 15*time.Second, cfg.Service.RequestTimeout)
		assert.Equal(t, "members.yaml", cfg.Roster.Path)
		assert.Equal(t, "https://api.twitch.tv/helix", cfg.Twitch.APIBaseURL)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("TWITCH_CLIENT_ID", "client")
		t.Setenv("TWITCH_CLIENT_SECRET", "secret")
		t.Setenv("SERVICE_PORT", "9000")
		t.Setenv("TWITCH_TIMEOUT", "3s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.Service.Port)
		assert.Equal(t, 3*time.Second, cfg.Twitch.Timeout)
	})

	t.Run("missing_credentials", func(t *testing.T) {
		t.Setenv("TWITCH_CLIENT_ID", "")
		t.Setenv("TWITCH_CLIENT_SECRET", "")
		require.NoError(t, os.Unsetenv("TWITCH_CLIENT_ID"))
		require.NoError(t, os.Unsetenv("TWITCH_CLIENT_SECRET"))

		_, err := Load()
		assert.Error(t, err)
	})
}
