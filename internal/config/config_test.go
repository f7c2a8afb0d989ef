package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:                  "development",
		Port:                 "3000",
		JWTSecret:            "secure-secret-at-least-32-chars-long",
		DBDriver:             "sqlite",
		DBPassword:           "secure-password",
		DBSSLMode:            "require",
		SessionTTLHours:      24,
		SwapTransitionPolicy: TransitionPolicyPermissive,
	}
}

func TestConfig_ValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", true},
		{"Production with disable SSL mode", "production", "disable", true},
		{"Production with require SSL mode", "production", "require", false},
		{"Prod with verify-full SSL mode", "prod", "verify-full", false},
		{"Development with disable SSL mode", "development", "disable", false},
		{"Test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			c.Env = tt.env
			c.DBDriver = "postgres"
			c.DBSSLMode = tt.sslMode

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid", func(*Config) {}, false},
		{"Missing port", func(c *Config) { c.Port = "" }, true},
		{"Missing secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Unknown driver", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"Strict policy", func(c *Config) { c.SwapTransitionPolicy = TransitionPolicyStrict }, false},
		{"Unknown policy", func(c *Config) { c.SwapTransitionPolicy = "anything-goes" }, true},
		{"Zero session ttl", func(c *Config) { c.SessionTTLHours = 0 }, true},
		{"Production default secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = defaultJWTSecret
		}, true},
		{"Production short secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Normalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer os.Unsetenv("SWAP_TRANSITION_POLICY")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")
	os.Setenv("SWAP_TRANSITION_POLICY", " Strict ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
	assert.Equal(t, TransitionPolicyStrict, c.SwapTransitionPolicy)
	assert.Equal(t, 24, c.SessionTTLHours)
	assert.Equal(t, "sqlite", c.DBDriver)
}

func TestLoadConfig_ProductionProfile(t *testing.T) {
	defer viper.Reset()
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-production-secret-that-is-long-enough")
	t.Setenv("DB_PASSWORD", "s3cure-db-pass")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.True(t, c.IsProduction())
	assert.Equal(t, "postgres", c.DBDriver)
	assert.Equal(t, "require", c.DBSSLMode)
	assert.Equal(t, TransitionPolicyStrict, c.SwapTransitionPolicy)
	assert.False(t, c.SeedDemoData)
}
