package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config del servicio. Todo viene de env; .env solo para dev local.
type Config struct {
	HTTP struct {
		Addr         string
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}
	// DSN de Postgres. Vacío => repos in-memory (dev/tests).
	DatabaseDSN string
	Redis       struct {
		Addr     string // vacío => sin cache de reportes
		Password string
		DB       int
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	// Base URL del servicio de consulta de CEP (estilo ViaCEP).
	CEPBaseURL string
	Log        struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	// Ignorado si no existe .env; en producción las vars ya están seteadas.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.HTTP.ReadTimeout = 5 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second

	cfg.DatabaseDSN = getEnv("DB_DSN", "")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.TTL = 12 * time.Hour

	cfg.CEPBaseURL = getEnv("CEP_BASE_URL", "https://viacep.com.br")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
