package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Env struct {
	AppAddr     string `yaml:"app_addr"`
	GinMode     string `yaml:"gin_mode"`
	LogLevel    string `yaml:"log_level"`
	JWTSecret   string `yaml:"jwt_secret"`
	CORSOrigins string `yaml:"cors_origins"`

	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBName     string `yaml:"db_name"`
}

// LoadEnv reads configuration from an optional YAML file (CONFIG_FILE)
// with environment variables taking precedence, then fills defaults.
func LoadEnv() Env {
	var env Env

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(raw, &env)
		}
	}

	overlay(&env.AppAddr, "APP_ADDR")
	overlay(&env.GinMode, "GIN_MODE")
	overlay(&env.LogLevel, "LOG_LEVEL")
	overlay(&env.JWTSecret, "JWT_SECRET")
	overlay(&env.CORSOrigins, "CORS_ALLOWED_ORIGINS")
	overlay(&env.DBUser, "DB_USER")
	overlay(&env.DBPassword, "DB_PASSWORD")
	overlay(&env.DBHost, "DB_HOST")
	overlay(&env.DBName, "DB_NAME")

	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if env.JWTSecret == "" {
		env.JWTSecret = "super-secret-key-change-me"
	}
	if env.DBUser == "" {
		env.DBUser = "root"
	}
	if env.DBHost == "" {
		env.DBHost = "127.0.0.1:3306"
	}
	if env.DBName == "" {
		env.DBName = "ev_taxi"
	}

	return env
}

func overlay(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
