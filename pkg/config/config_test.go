package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_DB", "3")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("DEFAULT_USER_PROFILE_COVER_URL", "https://cdn.example.com/cover.png")
	os.Setenv("DEFAULT_TIME_ZONE", "Europe/Berlin")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "https://cdn.example.com/cover.png", cfg.DefaultUserProfileCoverURL)
	assert.Equal(t, "Europe/Berlin", cfg.DefaultTimeZone)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("REDIS_DB")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("DEFAULT_USER_PROFILE_COVER_URL")
	os.Unsetenv("DEFAULT_TIME_ZONE")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("RATE_LIMIT_PER_MINUTE")
	os.Unsetenv("DEFAULT_PICTURE_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.NotEmpty(t, cfg.DefaultPictureURL)
	assert.NotEmpty(t, cfg.DefaultUserProfileImageURL)
	assert.NotEmpty(t, cfg.DefaultUserProfileCoverURL)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	os.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	defer os.Unsetenv("RATE_LIMIT_PER_MINUTE")

	assert.Equal(t, 60, getEnvInt("RATE_LIMIT_PER_MINUTE", 60))
}
