package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultProjectLink = "https://github.com/yourusername/your-repo"

type config struct {
	Addr         string
	JWTSecret    string
	TokenTTL     time.Duration
	SeedFile     string
	ProjectLink  string
	CORSOrigins  []string
	MaxBodyBytes int64
	EnableHSTS   bool
	TraceLog     bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:        getEnv("APP_ADDR", ":3000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SeedFile:    os.Getenv("CATALOG_SEED_FILE"),
		ProjectLink: getEnv("PROJECT_LINK", defaultProjectLink),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:  getEnvBool("ENABLE_HSTS"),
		TraceLog:    getEnvBool("TRACE_LOG"),
	}
	if cfg.JWTSecret == "" {
		return config{}, errors.New("missing required environment variable: JWT_SECRET")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil || ttl <= 0 {
		return config{}, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	maxBytes, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBytes <= 0 {
		return config{}, fmt.Errorf("invalid MAX_BODY_BYTES %q", os.Getenv("MAX_BODY_BYTES"))
	}
	cfg.MaxBodyBytes = maxBytes

	return cfg, nil
}
