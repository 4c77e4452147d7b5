package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	InternalToken   string `envconfig:"INTERNAL_TOKEN" required:"true"`
	CORSAllowOrigin string `envconfig:"CORS_ALLOW_ORIGIN" default:"*"`

	// LogoPath points at the PNG/JPEG drawn in the document header. Empty or
	// unreadable means documents render without a logo.
	LogoPath string `envconfig:"LOGO_PATH" default:""`
}

func Load() (Config, error) {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}
	return cfg, nil
}
