package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("ALLOW_REGISTER", "")
	t.Setenv("CORS_ORIGINS", "")

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "8080", settings.Port)
	assert.Equal(t, 168, settings.JWTTTLHours)
	assert.False(t, settings.AllowRegister)
	assert.Equal(t, []string{"*"}, settings.CORSOrigins)
}

func TestLoadSettingsRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestParseCORSOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, parseCORSOrigins(""))
	assert.Equal(t, []string{"*"}, parseCORSOrigins("  ,  "))
	assert.Equal(t,
		[]string{"https://app.example.com", "http://localhost:5173"},
		parseCORSOrigins("https://app.example.com, http://localhost:5173"))
}
