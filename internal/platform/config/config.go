package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	// BackendURL is the judging backend the gateway proxies to.
	BackendURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MaxSubmissions          int
	LeaderboardCacheSeconds int
	LeaderboardPollSeconds  int
	CORSAllowedOrigins      string

	// SessionFile is where the CLI persists the team session.
	SessionFile string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:                 getEnv("API_PORT", "8080"),
		JWTKey:                  []byte(getEnv("JWT_SECRET", "codearena-default-secret-change-me")),
		JWTExp:                  time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 3)) * time.Hour,
		BackendURL:              getEnv("BACKEND_URL", "http://localhost:3000"),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		MaxSubmissions:          getEnvAsInt("MAX_SUBMISSIONS", 10),
		LeaderboardCacheSeconds: getEnvAsInt("LEADERBOARD_CACHE_SECONDS", 10),
		LeaderboardPollSeconds:  getEnvAsInt("LEADERBOARD_POLL_SECONDS", 10),
		CORSAllowedOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "*"),
		SessionFile:             getEnv("SESSION_FILE", defaultSessionFile()),
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "codearena_session.json"
	}
	return filepath.Join(home, ".codearena", "session.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
