package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success_Defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "0.0.0.0", cfg.ServerHost)
		assert.Equal(t, 8080, cfg.ServerPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 168*time.Hour, cfg.TokenExpiration)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, "patrolbook", cfg.MetricsNamespace)
		assert.True(t, cfg.RateLimitLoginEnabled)
	})

	t.Run("Success_EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("TOKEN_EXPIRATION_HOURS", "24")
		t.Setenv("BCRYPT_COST", "13")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		assert.Equal(t, 9090, cfg.ServerPort)
		assert.Equal(t, 24*time.Hour, cfg.TokenExpiration)
		assert.Equal(t, 13, cfg.BcryptCost)
		assert.Equal(t, "debug", cfg.GetGinMode())
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TokenSigningSecret: "test-signing-secret",
			TokenExpiration:    168 * time.Hour,
			BcryptCost:         12,
		}
	}

	t.Run("Success_PlaintextSecret", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Success_EncryptedSecretWithKeyURI", func(t *testing.T) {
		cfg := valid()
		cfg.TokenSigningSecret = ""
		cfg.TokenSigningSecretCiphertext = "Y2lwaGVydGV4dA=="
		cfg.TokenKMSKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

		require.NoError(t, cfg.Validate())
	})

	t.Run("Error_MissingSecret", func(t *testing.T) {
		cfg := valid()
		cfg.TokenSigningSecret = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOKEN_SIGNING_SECRET")
	})

	t.Run("Error_CiphertextWithoutKeyURI", func(t *testing.T) {
		cfg := valid()
		cfg.TokenSigningSecret = ""
		cfg.TokenSigningSecretCiphertext = "Y2lwaGVydGV4dA=="

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOKEN_KMS_KEY_URI")
	})

	t.Run("Error_NonPositiveExpiration", func(t *testing.T) {
		cfg := valid()
		cfg.TokenExpiration = 0

		require.Error(t, cfg.Validate())
	})

	t.Run("Error_BcryptCostOutOfRange", func(t *testing.T) {
		cfg := valid()
		cfg.BcryptCost = 4

		require.Error(t, cfg.Validate())
	})
}
