package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int
	DataDir     string
	LogLevel    string

	LLMAPIKey        string
	LLMBaseURL       string
	LLMModel         string
	LLMTimeout       time.Duration
	LLMRatePerMinute int
	RedisURL         string
	LLMCacheTTL      time.Duration
	PhrasesFile      string
	LiveDebounce     time.Duration

	AccessPasswordHash string
	JWTSecret          string
	JWTIssuer          string
	JWTTTLMinutes      int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 4),
		DataDir:     getEnv("DATA_DIR", "data"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		LLMAPIKey:        os.Getenv("LLM_API_KEY"),
		LLMBaseURL:       getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTimeout:       getEnvDuration("LLM_TIMEOUT", 15*time.Second),
		LLMRatePerMinute: getEnvInt("LLM_RATE_PER_MINUTE", 30),
		RedisURL:         os.Getenv("REDIS_URL"),
		LLMCacheTTL:      getEnvDuration("LLM_CACHE_TTL", 24*time.Hour),
		PhrasesFile:      os.Getenv("PHRASES_FILE"),
		LiveDebounce:     getEnvDuration("LIVE_DEBOUNCE", 600*time.Millisecond),

		AccessPasswordHash: os.Getenv("ACCESS_PASSWORD_HASH"),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:          getEnv("JWT_ISSUER", "cvtailor"),
		JWTTTLMinutes:      getEnvInt("JWT_TTL_MINUTES", 720),
	}
}

// AuthEnabled reports whether the API is guarded by the access password.
func (c Config) AuthEnabled() bool { return c.AccessPasswordHash != "" }

// LLMEnabled reports whether an external generation service is configured.
func (c Config) LLMEnabled() bool { return c.LLMAPIKey != "" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
