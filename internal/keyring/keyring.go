package keyring

import (
	"errors"
	"fmt"

	"github.com/solterra/reservas/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no endpoint URL is stored in the keyring
	ErrNotFound = errors.New("sheet endpoint not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetEndpointURL retrieves the Apps Script endpoint URL from the OS keyring.
// The URL embeds the deployment token, so it is treated as a credential.
func GetEndpointURL() (string, error) {
	url, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return url, nil
}

// SetEndpointURL stores the Apps Script endpoint URL in the OS keyring.
func SetEndpointURL(url string) error {
	if url == "" {
		return errors.New("endpoint URL cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, url); err != nil {
		return fmt.Errorf("failed to store endpoint in keyring: %w", err)
	}
	return nil
}

// DeleteEndpointURL removes the Apps Script endpoint URL from the OS keyring.
func DeleteEndpointURL() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete endpoint from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty.
	return err == nil || err == keyring.ErrNotFound
}
