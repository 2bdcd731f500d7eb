package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	Payment PaymentConfig
}

type ServerConfig struct {
	Port            int           `env:"PORT" envDefault:"5000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB" envDefault:"mnaSensors"`
	Timeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

type JWTConfig struct {
	Secret     string        `env:"ACCESS_TOKEN_SECRET" envDefault:"super-secret-key"`
	Expiration time.Duration `env:"ACCESS_TOKEN_EXPIRATION" envDefault:"24h"`
}

type PaymentConfig struct {
	SecretKey string `env:"PAYMENT_SECRET_KEY"`
	BaseURL   string `env:"PAYMENT_API_URL" envDefault:"https://api.stripe.com"`
}

func Load() (*Config, error) {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
