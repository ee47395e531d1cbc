package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solterra/reservas/internal/keyring"
)

type ConfigCmd struct {
	SetURL ConfigSetURLCmd `cmd:"" name:"set-url" help:"Store the Apps Script endpoint URL in the OS keyring."`
	Show   ConfigShowCmd   `cmd:"" help:"Show the stored endpoint URL (redacted)."`
	Clear  ConfigClearCmd  `cmd:"" help:"Remove the stored endpoint URL."`
}

type ConfigSetURLCmd struct {
	URL string `arg:"" help:"Apps Script deployment URL."`
}

func (c *ConfigSetURLCmd) Run() error {
	if !strings.HasPrefix(c.URL, "https://") {
		return fmt.Errorf("endpoint URL must be https")
	}
	if err := keyring.SetEndpointURL(c.URL); err != nil {
		return err
	}
	fmt.Println("✓ Endpoint URL stored in OS keyring")
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run() error {
	url, err := keyring.GetEndpointURL()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No endpoint URL stored.")
			return nil
		}
		return err
	}
	fmt.Println(redact(url))
	return nil
}

type ConfigClearCmd struct{}

func (c *ConfigClearCmd) Run() error {
	if err := keyring.DeleteEndpointURL(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No endpoint URL stored.")
			return nil
		}
		return err
	}
	fmt.Println("✓ Endpoint URL removed from OS keyring")
	return nil
}

// redact hides the deployment token portion of an Apps Script URL, keeping
// enough of it to recognize which deployment is configured.
func redact(url string) string {
	const keep = 28
	if len(url) <= keep {
		return url
	}
	return url[:keep] + "…(redacted)"
}
