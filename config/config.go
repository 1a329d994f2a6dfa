package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	TokenSecret   string
	StripeKey     string
	GeminiKey     string
	GeminiModel   string
	CloudinaryURL string
	GoogleClient  string
	ClientOrigins []string
	LogLevel      string
	StatsCronSpec string
}

// IsProduction reports whether cookies must be issued cross-site and secure.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	LoadEnv()

	env := getEnvDefault("ENV", "dev")
	cfg := &Config{
		Env:           env,
		Port:          getEnvDefault("PORT", "5000"),
		DatabaseURL:   databaseURL(env),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		TokenSecret:   os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeKey:     os.Getenv("STRIPE_SECRET_KEY"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		GoogleClient:  os.Getenv("GOOGLE_CLIENT_ID"),
		ClientOrigins: splitList(getEnvDefault("CLIENT_ORIGINS", "http://localhost:5173")),
		LogLevel:      getEnvDefault("LOG_LEVEL", "info"),
		StatsCronSpec: getEnvDefault("STATS_CRON", "@every 10m"),
	}

	if cfg.TokenSecret == "" {
		log.Printf("Warning: ACCESS_TOKEN_SECRET is empty, session tokens are insecure")
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
