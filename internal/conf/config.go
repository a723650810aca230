package conf

import (
	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
)

type Database struct {
	Type string `env:"DB_TYPE" envDefault:"sqlite3"`
	DSN  string `env:"DB_DSN" envDefault:"data/trackwell.db"`
}

type S3 struct {
	Bucket          string `env:"S3_BUCKET"`
	Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"S3_ENDPOINT"`
	AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	ForcePathStyle  bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

type Log struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
}

type Config struct {
	Addr        string   `env:"HTTP_ADDR" envDefault:":8725"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	Database    Database
	S3          S3
	Log         Log
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config from environment")
	}
	return c, nil
}
