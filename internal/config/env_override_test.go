package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("FOLIO_CONTENT sets content path", func(t *testing.T) {
		t.Setenv("FOLIO_CONTENT", "/srv/me.yaml")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/me.yaml", cfg.Content.Path)
	})

	t.Run("FOLIO_THEME is lower-cased", func(t *testing.T) {
		t.Setenv("FOLIO_THEME", "DARK")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.UI.Theme)
	})

	t.Run("SMTP credentials come from the environment", func(t *testing.T) {
		t.Setenv("FOLIO_SMTP_USERNAME", "me@example.com")
		t.Setenv("FOLIO_SMTP_PASSWORD", "app-password")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "me@example.com", cfg.Contact.SMTP.Username)
		assert.Equal(t, "app-password", cfg.Contact.SMTP.Password)
	})

	t.Run("webhook transport validates once URL is set", func(t *testing.T) {
		t.Setenv("FOLIO_CONTACT_TRANSPORT", "Webhook")
		t.Setenv("FOLIO_WEBHOOK_URL", "https://hooks.example.com/contact")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "webhook", cfg.Contact.Transport)
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty variables leave the file values alone", func(t *testing.T) {
		t.Setenv("FOLIO_CONTENT", "")
		t.Setenv("FOLIO_CONTACT_TRANSPORT", "")

		cfg := DefaultConfig()
		cfg.Content.Path = "content.yaml"
		cfg.applyEnvOverrides()

		assert.Equal(t, "content.yaml", cfg.Content.Path)
		assert.Equal(t, "log", cfg.Contact.Transport)
	})
}
