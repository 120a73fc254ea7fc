// Package config carrega a configuração da API a partir do ambiente.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DBDriver escolhe o backend: postgres, sqlite ou memory.
	DBDriver string `env:"DB_DRIVER" envDefault:"memory"`
	// DBDSN é a DSN do Postgres ou o caminho do arquivo SQLite.
	DBDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"petadota"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
