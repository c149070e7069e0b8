// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "wow-renovate-data"

	// EnvPrefix is the prefix for all configuration environment variables.
	EnvPrefix = "wow_renovate_data"

	// Version is the current application semantic version string.
	Version = "1.2.0"

	// UserAgent identifies this tool on requests to the CurseForge API.
	UserAgent = App + "/" + Version

	// GameID is the CurseForge game identifier for World of Warcraft.
	GameID = 1

	// Repository is the canonical source repository, used for release lookups.
	Repository = "RagedUnicorn/wow-renovate-data"
)

// Build metadata, overridable at link time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
