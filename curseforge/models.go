// Package curseforge provides a client for the CurseForge game version APIs.
package curseforge

// VersionGroup is one entry of the core API's grouped version listing:
// every known version name of a single version type.
type VersionGroup struct {
	TypeID   int      `json:"type"`
	Versions []string `json:"versions"`
}

// versionGroupsResponse defines the anticipated JSON envelope for the grouped version listing.
type versionGroupsResponse struct {
	Data []VersionGroup `json:"data"`
}

// GameVersion is one entry of the upload API's flat version id listing.
type GameVersion struct {
	ID     int    `json:"id"`
	TypeID int    `json:"gameVersionTypeID"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}
