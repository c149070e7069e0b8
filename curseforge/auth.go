package curseforge

import (
	"errors"

	"github.com/RagedUnicorn/wow-renovate-data/constant"
	"github.com/RagedUnicorn/wow-renovate-data/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	keyringService = constant.App
	keyringUser    = "curseforge-api-key"
)

// ErrMissingAPIKey signals that no CurseForge credential could be resolved.
// It is checked before any network call is attempted.
var ErrMissingAPIKey = errors.New("missing CurseForge API key: set " +
	"WOW_RENOVATE_DATA_CURSEFORGE_API_KEY or store one with \"wow-renovate-data auth\"")

// APIKey resolves the CurseForge credential. Configuration (which includes the
// bound environment variable) takes precedence; the system keyring is the fallback store.
func APIKey() (string, error) {
	if apiKey := viper.GetString(key.CurseforgeAPIKey); apiKey != "" {
		return apiKey, nil
	}

	apiKey, err := keyring.Get(keyringService, keyringUser)
	if err != nil || apiKey == "" {
		return "", ErrMissingAPIKey
	}

	return apiKey, nil
}

// SaveAPIKey persists the CurseForge credential to the system keyring.
func SaveAPIKey(apiKey string) error {
	return keyring.Set(keyringService, keyringUser, apiKey)
}

// DeleteAPIKey removes the CurseForge credential from the system keyring.
func DeleteAPIKey() error {
	return keyring.Delete(keyringService, keyringUser)
}
