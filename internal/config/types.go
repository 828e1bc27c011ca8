package config

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	// Port is the TCP port the portfolio server listens on.
	Port int `yaml:"port" koanf:"port"`

	// DataDir holds the snapshot database.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// AssetsDir holds images and other static files served under /assets/.
	AssetsDir string `yaml:"assets_dir" koanf:"assets_dir"`

	// ExportDir receives the static site export.
	ExportDir string `yaml:"export_dir" koanf:"export_dir"`

	// DevMode enables the editing surface. It is fixed for the lifetime
	// of the process; without it edit mode can never be switched on.
	DevMode bool `yaml:"dev_mode" koanf:"dev_mode"`

	// AssetInclude and AssetExclude are glob patterns selecting which
	// files under AssetsDir the static export copies.
	AssetInclude []string `yaml:"asset_include" koanf:"asset_include"`
	AssetExclude []string `yaml:"asset_exclude" koanf:"asset_exclude"`

	// AllowedOrigins lists CORS origins allowed to call the API. A
	// single "*" allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}
