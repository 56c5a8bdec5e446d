// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/wizarding-rpg/character-api/internal/errors"
)

// Config holds everything the service needs at startup. It is constructed
// once by the entry point and injected; nothing reads the environment after
// Load returns.
type Config struct {
	// RedisAddr is the row-store endpoint, host:port.
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RedisPoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`

	// AdminSecret is the bootstrap secret compared against user-supplied
	// input when granting the admin role.
	AdminSecret string `env:"ADMIN_SECRET"`
}

// Load reads an optional .env file and parses the environment. A missing
// .env file is not an error; a malformed environment is.
func Load() (*Config, error) {
	// Ignore the error: production deployments configure the process
	// environment directly and have no .env file.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	return &cfg, nil
}
