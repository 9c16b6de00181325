package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the full environment surface of the service. USE_POSTGRES
// selects the backend: the PostgreSQL pool behind DB_DSN, or the single
// shared SQLite file at SQLITE_PATH.
type Config struct {
	Port     string `env:"PORT" envDefault:"8081"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	UsePostgres bool   `env:"USE_POSTGRES" envDefault:"false"`
	DatabaseDSN string `env:"DB_DSN"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/dealership.db"`
	DBMaxOpen   int    `env:"DB_MAX_OPEN" envDefault:"10"`
	DBMaxIdle   int    `env:"DB_MAX_IDLE" envDefault:"5"`

	// Local-disk fallback for contract files when no S3 store is configured.
	UploadBase string `env:"UPLOAD_BASE" envDefault:"uploads"`

	S3Endpoint    string `env:"S3_ENDPOINT"`
	S3CDNEndpoint string `env:"S3_CDN_ENDPOINT"`
	S3Region      string `env:"S3_REGION"`
	S3Bucket      string `env:"S3_BUCKET"`
	S3AccessKey   string `env:"S3_ACCESS_KEY"`
	S3SecretKey   string `env:"S3_SECRET_KEY"`
	S3UseSSL      bool   `env:"S3_USE_SSL" envDefault:"true"`
}

// loadConfig reads ./.env if present (never overwriting variables already
// set) and parses the environment into a Config.
func loadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}
