package config

// DefaultAssetExcludes are glob patterns excluded from the static export
// by default.
var DefaultAssetExcludes = []string{
	"**/.DS_Store",
	"**/*.psd",
	"**/*.ai",
	"**/*.sketch",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		DataDir:        ".folio",
		AssetsDir:      "assets",
		ExportDir:      "dist",
		DevMode:        false,
		AssetInclude:   []string{"**"},
		AssetExclude:   DefaultAssetExcludes,
		AllowedOrigins: []string{"*"},
	}
}
