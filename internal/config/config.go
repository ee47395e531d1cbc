package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/solterra/reservas/internal/keyring"
)

// Config is the runtime configuration. The sheet endpoint URL resolves in
// order: --url flag, RESERVAS_SHEET_URL, OS keyring.
type Config struct {
	SheetURL     string        `envconfig:"SHEET_URL"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5m"`
	Debug        bool          `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from RESERVAS_* environment variables and fills
// the endpoint URL from the OS keyring when neither the flag nor the
// environment provided one. flagURL wins over everything.
func Load(flagURL string) (Config, error) {
	var cfg Config
	if err := envconfig.Process("reservas", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if flagURL != "" {
		cfg.SheetURL = flagURL
	}
	if cfg.SheetURL == "" {
		url, err := keyring.GetEndpointURL()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return Config{}, errors.New("no sheet endpoint configured: pass --url, set RESERVAS_SHEET_URL, or run 'reservas config set-url'")
			}
			return Config{}, err
		}
		cfg.SheetURL = url
	}

	return cfg, nil
}
