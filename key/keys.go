// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// CurseForge API - these keys manage upstream endpoints and the request credential.
const (
	CurseforgeAPIKey       = "curseforge.api_key"
	CurseforgeAPIURL       = "curseforge.api_url"
	CurseforgeUploadAPIURL = "curseforge.upload_api_url"
	CurseforgeTimeout      = "curseforge.timeout"
)

// Data Publication - these keys govern where the generated JSON artifacts are written.
const (
	DataPath = "data.path"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these keys govern terminal output and update discovery.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of CLI status symbols.
const (
	IconsVariant = "icons.variant"
)
