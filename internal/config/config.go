package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	HTTPPort        string
	ReportTTL       time.Duration
	RankingTTL      time.Duration
	FinalizeRetries int
}

func Load() *Config {
	return &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "skillscope"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReportTTL:       getEnvAsDuration("REPORT_CACHE_TTL", 24*time.Hour),
		RankingTTL:      getEnvAsDuration("RANKING_CACHE_TTL", 10*time.Minute),
		FinalizeRetries: getEnvAsInt("FINALIZE_RETRIES", 3),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
