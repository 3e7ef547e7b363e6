package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvGRPCAddr         = "MDT_GRPC_ADDR"
	EnvDatabaseDSN      = "MDT_DATABASE_DSN"
	EnvSecretKey        = "MDT_SECRET_KEY"
	EnvAccessTokenTTL   = "MDT_ACCESS_TOKEN_TTL"
	EnvRefreshTokenTTL  = "MDT_REFRESH_TOKEN_TTL"
	EnvS3User           = "MDT_S3_USER"
	EnvS3Password       = "MDT_S3_PASSWORD"
	EnvS3Bucket         = "MDT_S3_BUCKET"
	EnvS3Region         = "MDT_S3_REGION"
	EnvS3Endpoint       = "MDT_S3_ENDPOINT"
	EnvS3PublicURL      = "MDT_S3_PUBLIC_URL"
	EnvRedisAddr        = "MDT_REDIS_ADDR"
	EnvRedisPassword    = "MDT_REDIS_PASSWORD"
	EnvPresenceTTL      = "MDT_PRESENCE_TTL"
	EnvChatHistoryLimit = "MDT_CHAT_HISTORY_LIMIT"
	EnvChatRate         = "MDT_CHAT_RATE"
	EnvChatBurst        = "MDT_CHAT_BURST"
	EnvLogLevel         = "MDT_LOG_LEVEL"
)

// parseEnv overlays MDT_* variables onto config. If dotenvPath names an
// existing file it is loaded first; variables already set in the process
// environment take precedence over the file. Malformed values panic.
func parseEnv(config *Config, dotenvPath string) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				panic(err)
			}
		}
	}

	envString(&config.EndpointAddrGRPC, EnvGRPCAddr)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SecretKey, EnvSecretKey)
	envDuration(&config.AccessTokenValidityDuration, EnvAccessTokenTTL)
	envDuration(&config.RefreshTokenValidityDuration, EnvRefreshTokenTTL)
	envString(&config.S3RootUser, EnvS3User)
	envString(&config.S3RootPassword, EnvS3Password)
	envString(&config.S3Bucket, EnvS3Bucket)
	envString(&config.S3Region, EnvS3Region)
	envString(&config.S3BaseEndpoint, EnvS3Endpoint)
	envString(&config.S3PublicBaseURL, EnvS3PublicURL)
	envString(&config.RedisAddr, EnvRedisAddr)
	envString(&config.RedisPassword, EnvRedisPassword)
	envDuration(&config.PresenceTTL, EnvPresenceTTL)
	envInt(&config.ChatHistoryLimit, EnvChatHistoryLimit)
	envFloat(&config.ChatRatePerSecond, EnvChatRate)
	envInt(&config.ChatRateBurst, EnvChatBurst)
	envString(&config.LogLevel, EnvLogLevel)
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}

func envInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = n
}

func envFloat(dst *float64, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = f
}
