package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

type Config struct {
	Port        string
	CatalogPath string
	DataDir     string
	Relay       Relay
}

type Relay struct {
	Mode    string // "http" posts to URL, "smtp" sends directly
	URL     string
	Subject string
	SMTP    SMTP
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:        getEnv("APP_PORT", log),
		CatalogPath: getEnv("CATALOG_PATH", log),
		DataDir:     getEnvDefault("DATA_DIR", "./data"),
		Relay: Relay{
			Mode:    getEnvDefault("RELAY_MODE", "http"),
			Subject: getEnvDefault("RELAY_SUBJECT", "New Order"),
		},
	}

	switch cfg.Relay.Mode {
	case "http":
		cfg.Relay.URL = getEnv("RELAY_URL", log)
	case "smtp":
		cfg.Relay.SMTP = SMTP{
			Host:     getEnv("SMTP_HOST", log),
			Port:     getEnvInt("SMTP_PORT", log),
			User:     getEnv("SMTP_USER", log),
			Password: getEnv("SMTP_PASSWORD", log),
			From:     getEnv("SMTP_FROM", log),
			To:       getEnv("SMTP_TO", log),
		}
	default:
		log.Error("Unknown relay mode", zap.String("mode", cfg.Relay.Mode))
		panic("unknown relay mode: " + cfg.Relay.Mode)
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, log *zap.Logger) int {
	valStr := getEnv(key, log)
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("Environment variable is not an integer", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}
