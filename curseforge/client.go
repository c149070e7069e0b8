package curseforge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/RagedUnicorn/wow-renovate-data/constant"
	"github.com/RagedUnicorn/wow-renovate-data/key"
	"github.com/RagedUnicorn/wow-renovate-data/log"
	"github.com/RagedUnicorn/wow-renovate-data/network"
	"github.com/spf13/viper"
)

// baseURL reads an endpoint base from configuration, trimming a trailing slash.
// Keeping endpoints in configuration lets tests point the client at local servers.
func baseURL(configKey string) string {
	return strings.TrimSuffix(viper.GetString(configKey), "/")
}

// get performs an authenticated GET against the given URL, placing the credential
// in the named header. It raises on transport failure and on any non-200 response.
func get(ctx context.Context, url, authHeader string) (*http.Response, error) {
	apiKey, err := APIKey()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(authHeader, apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("curseforge api request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("curseforge returned status code %d for %s", resp.StatusCode, url)
	}

	return resp, nil
}

// FetchVersionGroups retrieves every known World of Warcraft version name from the
// core API, grouped by version type.
func FetchVersionGroups() ([]VersionGroup, error) {
	url := fmt.Sprintf("%s/v1/games/%d/versions", baseURL(key.CurseforgeAPIURL), constant.GameID)

	log.Infof("Fetching version groups from %s", url)
	resp, err := get(context.Background(), url, "x-api-key")
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	var response versionGroupsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("decode version groups: %w", err)
	}

	log.Infof("Got response from CurseForge, found %d version groups", len(response.Data))
	return response.Data, nil
}

// FetchVersionIds retrieves the flat game version id records from the upload API.
// The upload API is noticeably slower than the core API, so the call carries its
// own configurable timeout.
func FetchVersionIds() ([]GameVersion, error) {
	url := baseURL(key.CurseforgeUploadAPIURL) + "/api/game/versions"

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(key.CurseforgeTimeout))
	defer cancel()

	log.Infof("Fetching game version ids from %s", url)
	resp, err := get(ctx, url, "X-Api-Token")
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	var versions []GameVersion
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		log.Error(err)
		return nil, fmt.Errorf("decode game versions: %w", err)
	}

	log.Infof("Got response from CurseForge, found %d game versions", len(versions))
	return versions, nil
}
