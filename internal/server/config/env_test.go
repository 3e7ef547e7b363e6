package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverridesFields(t *testing.T) {
	t.Setenv(EnvGRPCAddr, ":6000")
	t.Setenv(EnvAccessTokenTTL, "5m")
	t.Setenv(EnvChatHistoryLimit, "20")
	t.Setenv(EnvChatRate, "0.5")
	t.Setenv(EnvRedisAddr, "")

	cfg := &Config{RedisAddr: "redis:6379", SecretKey: "untouched"}
	parseEnv(cfg, "")

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 20, cfg.ChatHistoryLimit)
	assert.Equal(t, 0.5, cfg.ChatRatePerSecond)
	assert.Empty(t, cfg.RedisAddr, "a set but empty variable clears the value")
	assert.Equal(t, "untouched", cfg.SecretKey)
}

func TestParseEnv_DotEnv(t *testing.T) {
	path := writeTemp(t, ".env", "MDT_S3_BUCKET=from-dotenv\nMDT_LOG_LEVEL=error\n")
	t.Setenv(EnvLogLevel, "debug")
	t.Cleanup(func() { _ = os.Unsetenv(EnvS3Bucket) })

	cfg := &Config{}
	parseEnv(cfg, path)

	assert.Equal(t, "from-dotenv", cfg.S3Bucket)
	assert.Equal(t, "debug", cfg.LogLevel, "process environment wins over .env")
}

func TestParseEnv_MissingDotEnvIgnored(t *testing.T) {
	cfg := &Config{LogLevel: "info"}
	require.NotPanics(t, func() { parseEnv(cfg, "/nonexistent/.env") })
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv(EnvPresenceTTL, "soon")
	require.Panics(t, func() { parseEnv(&Config{}, "") })
}
