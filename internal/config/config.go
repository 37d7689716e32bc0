package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne tudo que vem do ambiente. Carregue uma vez no main e injete.
type Config struct {
	Port        string
	DatabaseURL string

	RabbitMQUser string
	RabbitMQPass string
	RabbitMQHost string
	RabbitMQPort string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
	LoginURL string

	JWTSecret string
	JWTTTL    time.Duration

	AWSRegion string
	S3Bucket  string

	ViaCEPURL string
}

func Load() (*Config, error) {
	// .env é conveniência de desenvolvimento; em produção as variáveis
	// já estão no ambiente.
	godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RabbitMQUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitMQHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort: getEnv("RABBITMQ_PORT", "5672"),

		MailHost: getEnv("MAIL_HOST", "localhost"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@vendascrm.com.br"),
		LoginURL: getEnv("LOGIN_URL", "https://app.vendascrm.com.br/login"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 12)) * time.Hour,

		AWSRegion: getEnv("AWS_REGION", "sa-east-1"),
		S3Bucket:  getEnv("S3_BUCKET", "vendas-crm-documentos"),

		ViaCEPURL: getEnv("VIACEP_URL", "https://viacep.com.br/ws"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL é obrigatória")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET é obrigatória")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
