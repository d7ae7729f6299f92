// Package config maps environment variables onto a typed configuration
// struct. The bot token is required and has no default: the backend refuses
// to start without the shared secret that signs the web-app payloads.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BackendURL is the listen address of the HTTP server.
	BackendURL string `envconfig:"BACKEND_URL" default:":8080"`

	// BotToken identifies the trusted Telegram bot. The verifier derives
	// its HMAC secret from it; see internal/auth/usecase.
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`

	SpinCost     int `envconfig:"SPIN_COST" default:"125"`
	StartBalance int `envconfig:"START_BALANCE" default:"1000"`

	// AdminPasswordHash is a bcrypt hash; plain admin passwords are never
	// part of the configuration.
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	AdminJWTSecret    string `envconfig:"ADMIN_JWT_SECRET" required:"true"`

	// StaticDir, when set, is served under /roulette/ and /admin/.
	StaticDir string `envconfig:"STATIC_DIR"`

	// RedisEndpoint enables the admin stats cache when non-empty.
	RedisEndpoint string `envconfig:"REDIS_ENDPOINT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
