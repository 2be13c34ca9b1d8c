package env

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries the environment-provided CLI defaults.
type Config struct {
	// Server is the OpenRGB SDK server address (host:port)
	Server string `env:"OPENRGB_SERVER"`
	// ClientName is the name announced to the server
	ClientName string `env:"OPENRGB_CLIENT_NAME"`
}

// LoadConfig reads Config from the environment, first loading .env.local
// when present.
func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
