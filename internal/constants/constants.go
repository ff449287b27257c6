package constants

const (
	Version        = `0.1.0`
	AppName        = `cheats`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.cheats/`
	EnvPrefix      = `CHEATS`
)

// Storage keys. Each collection lives under exactly one key.
const (
	KeyCustomSheets  = `custom-cheatsheets`
	KeyOfflineSheets = `offline-cheatsheets`
	KeyFavorites     = `favorite-cheatsheets`
	KeyPreferences   = `cheatsheet-preferences`
	KeyUsage         = `cheatsheet-usage`
	DraftPrefix      = `draft`
)

const (
	KeyringService   = `cheats`
	KeyringTokenUser = `github-token`
)
