package config

// StorageBackend selects where conversation records are persisted.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
)

// RendererConfig holds the markdown renderer toggles.
type RendererConfig struct {
	Sanitize  bool `yaml:"sanitize" koanf:"sanitize"`
	Highlight bool `yaml:"highlight" koanf:"highlight"`
	Breaks    bool `yaml:"breaks" koanf:"breaks"`
}

// CORSConfig holds the allowed browser origins for the widget endpoints.
type CORSConfig struct {
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// Config is the top-level chatembed configuration, corresponding to
// .chatembed.yml.
type Config struct {
	Port           int            `yaml:"port" koanf:"port"`
	ChatflowID     string         `yaml:"chatflow_id" koanf:"chatflow_id"`
	APIHost        string         `yaml:"api_host" koanf:"api_host"`
	StorageBackend StorageBackend `yaml:"storage_backend" koanf:"storage_backend"`
	StoragePath    string         `yaml:"storage_path" koanf:"storage_path"`
	ThemeFile      string         `yaml:"theme_file" koanf:"theme_file"`
	Renderer       RendererConfig `yaml:"renderer" koanf:"renderer"`
	CORS           CORSConfig     `yaml:"cors" koanf:"cors"`
}
