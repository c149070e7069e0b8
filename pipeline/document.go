// Package pipeline orchestrates the fetch, normalization and publication flows that
// produce the static JSON artifacts consumed by dependency-update tooling.
package pipeline

import (
	"encoding/json"

	"github.com/RagedUnicorn/wow-renovate-data/filesystem"
	"github.com/RagedUnicorn/wow-renovate-data/gameversion"
	"github.com/samber/lo"
)

// Document is a persisted artifact with a last-updated timestamp.
type Document interface {
	Timestamp() string
	SetTimestamp(ts string)
}

// ReleaseEntry is one row of the addon versions artifact: a candidate version the
// downstream tool can offer for upgrade.
type ReleaseEntry struct {
	Version           string              `json:"version"`
	Name              string              `json:"name"`
	Variant           gameversion.Variant `json:"variant"`
	GameVersionTypeID int                 `json:"gameVersionTypeId,omitempty"`
	VersionTypeName   string              `json:"versionTypeName,omitempty"`
	VersionTypeSlug   string              `json:"versionTypeSlug,omitempty"`
}

// VersionsDocument is the addon versions artifact. Everything besides lastUpdated and
// releases is a derived view recomputed from the same parsed records on every run.
type VersionsDocument struct {
	LastUpdated       string                                               `json:"lastUpdated"`
	Releases          []ReleaseEntry                                       `json:"releases"`
	Versions          []gameversion.ParsedVersion                          `json:"versions"`
	VersionsByVariant map[gameversion.Variant][]gameversion.ParsedVersion `json:"versionsByVariant"`
	VersionTypes      []gameversion.VersionType                            `json:"versionTypes"`
	Summary           map[gameversion.Variant]int                          `json:"summary"`
}

func (d *VersionsDocument) Timestamp() string      { return d.LastUpdated }
func (d *VersionsDocument) SetTimestamp(ts string) { d.LastUpdated = ts }

// GameVersionRelease is one row of the game version id artifact. The release timestamp
// is synthetic, derived purely from bucket position to give the consuming tool an
// ordered release history the upstream source does not provide. It is not a real date.
type GameVersionRelease struct {
	Version          string              `json:"version"`
	OriginalVersion  string              `json:"originalVersion"`
	Variant          gameversion.Variant `json:"variant"`
	ReleaseTimestamp string              `json:"releaseTimestamp"`
}

// GameVersionIdsDocument is the game version id artifact.
type GameVersionIdsDocument struct {
	LastUpdated string               `json:"lastUpdated"`
	Releases    []GameVersionRelease `json:"releases"`
}

func (d *GameVersionIdsDocument) Timestamp() string      { return d.LastUpdated }
func (d *GameVersionIdsDocument) SetTimestamp(ts string) { d.LastUpdated = ts }

// canonical serializes a value into its canonical JSON form for change comparison.
// Map keys marshal in sorted order, so the result is deterministic regardless of
// construction order.
func canonical(v any) string {
	return string(lo.Must(json.Marshal(v)))
}

// readInto loads and decodes a persisted artifact. A missing or corrupt file reports
// false, which callers treat as the absence of a previous document.
func readInto(path string, out any) bool {
	raw, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// writeDocument persists an artifact as a whole-file, indented JSON write.
func writeDocument(path string, doc Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return filesystem.API().WriteFile(path, append(raw, '\n'), 0644)
}
