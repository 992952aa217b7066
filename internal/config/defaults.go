package config

// DefaultConfig returns the configuration used when no file or overrides
// are present.
func DefaultConfig() *Config {
	return &Config{
		Port:           3100,
		StorageBackend: StorageSQLite,
		StoragePath:    ".chatembed/chatembed.db",
		Renderer: RendererConfig{
			Sanitize:  true,
			Highlight: true,
			Breaks:    true,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		},
	}
}
