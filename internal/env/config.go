package env

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

var ErrInvalidFinishMaxTries = errors.New("ROLLUP_FINISH_MAX_TRIES must be at least 1")

type Config struct {
	// ServerURL is the base URL of the rollup node
	ServerURL string `env:"ROLLUP_HTTP_SERVER_URL,required"`

	// FinishMaxTries bounds the attempts made for each finish call before
	// the process gives up on the node
	FinishMaxTries int `env:"ROLLUP_FINISH_MAX_TRIES,default=5"`

	LogLevel  string `env:"ROLLUP_LOG_LEVEL,default=info"`
	DebugHTTP bool   `env:"ROLLUP_DEBUG_HTTP"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	return loadConfig(ctx, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("Failed to load .env.local: %w", err)
		}
	}

	if err := envconfig.ProcessWith(ctx, &config, lookuper); err != nil {
		return nil, err
	}

	if config.FinishMaxTries < 1 {
		return nil, fmt.Errorf("got %d: %w", config.FinishMaxTries, ErrInvalidFinishMaxTries)
	}

	return &config, nil
}
