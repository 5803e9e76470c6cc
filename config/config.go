package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment          string
	Port                 string
	MongoURI             string
	DBName               string
	JWTSecret            string
	TokenTTL             time.Duration
	RedisAddr            string
	RedisPassword        string
	LoginMaxAttempts     int
	LoginLockout         time.Duration
	CookieSecure         bool
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSAllowCredentials bool
	GenAIEndpoint        string
	GenAIAPIKey          string
	GenAITimeout         time.Duration
	PageSizeMax          int
}

var (
	ErrMissingMongoURI  = errors.New("MONGODB_URI not set in environment")
	ErrMissingDBName    = errors.New("MONGODB_DB_NAME not set in environment")
	ErrMissingJWTSecret = errors.New("JWT_SECRET not set in environment")
)

// LoadEnv reads a .env file if one exists. Variables already in the
// environment are not overridden.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// Load reads configuration from the environment. A missing database or
// signing secret is an error; the server must not start without them.
func Load() (Config, error) {
	env := getEnv("APP_ENV", "development")
	cfg := Config{
		Environment:          env,
		Port:                 getEnv("PORT", "8080"),
		MongoURI:             os.Getenv("MONGODB_URI"),
		DBName:               os.Getenv("MONGODB_DB_NAME"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		TokenTTL:             getDuration("JWT_ACCESS_TOKEN_EXPIRES_IN", time.Hour),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		LoginMaxAttempts:     getInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginLockout:         getDuration("LOGIN_LOCKOUT", 15*time.Minute),
		CookieSecure:         getBool("COOKIE_SECURE", env == "production"),
		CORSAllowedOrigins:   getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		CORSAllowedMethods:   getList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE"}),
		CORSAllowedHeaders:   getList("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		CORSAllowCredentials: getBool("CORS_ALLOW_CREDENTIALS", true),
		GenAIEndpoint:        os.Getenv("GENAI_ENDPOINT"),
		GenAIAPIKey:          os.Getenv("GENAI_API_KEY"),
		GenAITimeout:         getDuration("GENAI_TIMEOUT", 30*time.Second),
		PageSizeMax:          getInt("PAGE_SIZE_MAX", 100),
	}

	switch {
	case cfg.MongoURI == "":
		return Config{}, ErrMissingMongoURI
	case cfg.DBName == "":
		return Config{}, ErrMissingDBName
	case cfg.JWTSecret == "":
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(v) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getList(key string, def []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	var cleaned []string
	for _, p := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return def
	}
	return cleaned
}
