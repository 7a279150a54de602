package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 12, cfg.Listing.PageSize)
	assert.Equal(t, 48, cfg.Listing.MaxPageSize)
	assert.Equal(t, "cosyll_session", cfg.Session.CookieName)
	assert.Equal(t, "/login", cfg.Session.LoginPath)
	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Audit.Enabled)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("COSYLL_API_URL", "https://api.cosyll.test/v1/")
	v.Set("COSYLL_API_TIMEOUT", "nonsense")
	v.Set("LISTING_PAGE_SIZE", 4)
	v.Set("LISTING_MAX_PAGE_SIZE", 2)
	v.Set("ALLOWED_ORIGINS", " https://a.test , ,https://b.test")

	cfg := fromViper(v)

	assert.Equal(t, "https://api.cosyll.test/v1", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 4, cfg.Listing.PageSize)
	assert.Equal(t, 4, cfg.Listing.MaxPageSize)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ENV", EnvProduction)

	cfg := fromViper(v)
	assert.ErrorIs(t, cfg.Validate(), ErrDefaultSecret)

	v.Set("JWT_SECRET", "a-real-secret")
	assert.NoError(t, fromViper(v).Validate())

	v.Set("ENV", EnvDevelopment)
	v.Set("JWT_SECRET", defaultJWTSecret)
	assert.NoError(t, fromViper(v).Validate())
}

func TestLoadFailsInProductionWithoutSecret(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("ENV", EnvProduction)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	assert.ErrorIs(t, err, ErrDefaultSecret)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret", cfg.Session.Secret)
}
