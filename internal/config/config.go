package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// VoteScoringUp counts only up-votes toward a question's score,
	// matching the historical behavior. VoteScoringNet subtracts down-votes.
	VoteScoringUp  = "up"
	VoteScoringNet = "net"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	TokenTTLHours int
	AdminEmail    string
	AdminPassword string
	AdminSecret   string
	VoteScoring   string
	ServerPort    string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "questup"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@questup.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminSecret:   getEnv("ADMIN_SECRET", "questup-admin-secret-change-me"),
		VoteScoring:   getEnv("VOTE_SCORING", VoteScoringUp),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}

	if cfg.VoteScoring != VoteScoringUp && cfg.VoteScoring != VoteScoringNet {
		cfg.VoteScoring = VoteScoringUp
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
