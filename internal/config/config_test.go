package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 3100 {
		t.Errorf("expected default port 3100, got %d", cfg.Port)
	}
	if cfg.StorageBackend != StorageSQLite {
		t.Errorf("expected default storage backend %q, got %q", StorageSQLite, cfg.StorageBackend)
	}
	if !cfg.Renderer.Sanitize || !cfg.Renderer.Highlight || !cfg.Renderer.Breaks {
		t.Errorf("renderer toggles should default on, got %+v", cfg.Renderer)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.chatembed.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.ChatflowID = "flow-abc"
	original.APIHost = "https://flows.example.com"
	original.StorageBackend = StorageMemory
	original.CORS.AllowedOrigins = []string{"https://site.example.com"}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.ChatflowID != original.ChatflowID {
		t.Errorf("chatflow_id: got %q, want %q", loaded.ChatflowID, original.ChatflowID)
	}
	if loaded.APIHost != original.APIHost {
		t.Errorf("api_host: got %q, want %q", loaded.APIHost, original.APIHost)
	}
	if loaded.StorageBackend != original.StorageBackend {
		t.Errorf("storage_backend: got %q, want %q", loaded.StorageBackend, original.StorageBackend)
	}
	if len(loaded.CORS.AllowedOrigins) != 1 || loaded.CORS.AllowedOrigins[0] != "https://site.example.com" {
		t.Errorf("cors origins: got %v", loaded.CORS.AllowedOrigins)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load of absent file should not fail: %v", err)
	}
	if cfg.Port != 3100 {
		t.Errorf("expected defaults, got port %d", cfg.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"bad backend", func(c *Config) { c.StorageBackend = "redis" }, true},
		{"sqlite without path", func(c *Config) { c.StoragePath = "" }, true},
		{"memory without path", func(c *Config) {
			c.StorageBackend = StorageMemory
			c.StoragePath = ""
		}, false},
		{"bad api host", func(c *Config) { c.APIHost = "not a url" }, true},
		{"good api host", func(c *Config) { c.APIHost = "http://localhost:3000" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
