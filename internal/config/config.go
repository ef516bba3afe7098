package config

import (
	"os"
	"strconv"
	"time"
)

// Config reúne tudo que o serviço lê do ambiente. O .env é carregado pelo
// main via godotenv antes do Load.
type Config struct {
	Port          string
	StorageDriver string // file | redis | postgres | memory
	DataDir       string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string

	PollInterval time.Duration

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	GateURL    string
	GateAPIKey string
	JWTSecret  string

	LogBufferSize int
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       getEnv("DATA_DIR", "data"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		PollInterval: getEnvDuration("REMINDER_POLL_INTERVAL", 30*time.Second),

		RabbitUser: getEnv("RABBITMQ_USER", "user"),
		RabbitPass: getEnv("RABBITMQ_PASS", "password"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@lembreteconsorcio.com"),

		GateURL:    os.Getenv("GATE_URL"),
		GateAPIKey: os.Getenv("GATE_API_KEY"),
		JWTSecret:  os.Getenv("JWT_SECRET"),

		LogBufferSize: getEnvInt("LOG_BUFFER_SIZE", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
