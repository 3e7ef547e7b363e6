package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/flagx"
	"github.com/dmitrijs2005/mdterp/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations accept
// both "15m" strings and integer nanoseconds. Only fields present in the
// file override the current values.
type FileConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                  *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                    *string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration" yaml:"refresh_token_validity_duration"`
	S3RootUser                   *string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                     *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3PublicBaseURL              *string         `json:"s3_public_base_url" yaml:"s3_public_base_url"`
	RedisAddr                    *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword                *string         `json:"redis_password" yaml:"redis_password"`
	PresenceTTL                  *timex.Duration `json:"presence_ttl" yaml:"presence_ttl"`
	ChatHistoryLimit             *int            `json:"chat_history_limit" yaml:"chat_history_limit"`
	ChatRatePerSecond            *float64        `json:"chat_rate_per_second" yaml:"chat_rate_per_second"`
	ChatRateBurst                *int            `json:"chat_rate_burst" yaml:"chat_rate_burst"`
	LogLevel                     *string         `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file named by -c / -config into config. Files ending
// in .yaml or .yml are read as YAML, everything else as JSON. No flag means
// no file. Unreadable or malformed files panic, like bad flags do.
func parseFile(config *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.SecretKey, fc.SecretKey)
	if fc.AccessTokenValidityDuration != nil {
		c.AccessTokenValidityDuration = fc.AccessTokenValidityDuration.Duration
	}
	if fc.RefreshTokenValidityDuration != nil {
		c.RefreshTokenValidityDuration = fc.RefreshTokenValidityDuration.Duration
	}
	setString(&c.S3RootUser, fc.S3RootUser)
	setString(&c.S3RootPassword, fc.S3RootPassword)
	setString(&c.S3Bucket, fc.S3Bucket)
	setString(&c.S3Region, fc.S3Region)
	setString(&c.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&c.S3PublicBaseURL, fc.S3PublicBaseURL)
	setString(&c.RedisAddr, fc.RedisAddr)
	setString(&c.RedisPassword, fc.RedisPassword)
	if fc.PresenceTTL != nil {
		c.PresenceTTL = fc.PresenceTTL.Duration
	}
	if fc.ChatHistoryLimit != nil {
		c.ChatHistoryLimit = *fc.ChatHistoryLimit
	}
	if fc.ChatRatePerSecond != nil {
		c.ChatRatePerSecond = *fc.ChatRatePerSecond
	}
	if fc.ChatRateBurst != nil {
		c.ChatRateBurst = *fc.ChatRateBurst
	}
	setString(&c.LogLevel, fc.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
