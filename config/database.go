package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             envString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     envUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     envUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: time.Duration(envUint64("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
		DatabaseName:    envString("MONGO_DB", "portfolio"),
		RetryWrites:     envBool("MONGO_RETRY_WRITES", true),
	}
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envUint64(key string, defaultVal uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return defaultVal
}
