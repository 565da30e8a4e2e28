package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultRetention = 720 * time.Hour
	defaultMailPort  = 587
)

type Config struct {
	Server  ServerConfig
	PayEvo  PayEvoConfig
	Catalog CatalogConfig
	DB      DatabaseConfig
	Rabbit  RabbitMQConfig
	SMTP    SMTPConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type PayEvoConfig struct {
	SecretKey string
	URL       string
	Timeout   time.Duration
}

type CatalogConfig struct {
	Path string
}

type DatabaseConfig struct {
	URL       string
	Retention time.Duration
}

type RabbitMQConfig struct {
	User     string
	Password string
	Host     string
	Port     string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled: banco, fila e SMTP são opcionais. Sem eles o checkout continua funcionando.
func (c DatabaseConfig) Enabled() bool { return c.URL != "" }
func (c RabbitMQConfig) Enabled() bool { return c.Host != "" }
func (c SMTPConfig) Enabled() bool     { return c.Host != "" }

// Load lê o .env (se existir) e o ambiente. A ausência da secret key da PayEvo não é erro
// aqui: cada requisição falha com 500 até ela ser configurada.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env não carregado: %v", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getenv("PORT", defaultPort),
			Env:            getenv("APP_ENV", "production"),
			LogLevel:       os.Getenv("LOG_LEVEL"),
			AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
		},
		PayEvo: PayEvoConfig{
			SecretKey: os.Getenv("PAYEVO_SECRET_KEY"),
			URL:       os.Getenv("PAYEVO_URL"),
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("COUPON_CATALOG_PATH"),
		},
		DB: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Rabbit: RabbitMQConfig{
			User:     getenv("RABBITMQ_USER", "guest"),
			Password: getenv("RABBITMQ_PASSWORD", "guest"),
			Host:     os.Getenv("RABBITMQ_HOST"),
			Port:     getenv("RABBITMQ_PORT", "5672"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("MAIL_HOST"),
			User:     os.Getenv("MAIL_USER"),
			Password: os.Getenv("MAIL_PASS"),
			From:     os.Getenv("MAIL_FROM"),
		},
	}

	var err error
	if cfg.PayEvo.Timeout, err = durationEnv("PAYEVO_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.DB.Retention, err = durationEnv("WEBHOOK_RETENTION", defaultRetention); err != nil {
		return nil, err
	}

	cfg.SMTP.Port = defaultMailPort
	if v := os.Getenv("MAIL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("MAIL_PORT inválida: %w", err)
		}
		cfg.SMTP.Port = port
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.User
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválida: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
