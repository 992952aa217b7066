package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .chatembed.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to chatembed! Let's configure your widget backend.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Chatflow identifier.
	chatflowPrompt := promptui.Prompt{
		Label: "Chatflow ID",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("chatflow ID is required")
			}
			return nil
		},
	}
	chatflowID, err := chatflowPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("chatflow prompt: %w", err)
	}
	cfg.ChatflowID = strings.TrimSpace(chatflowID)

	// 2. Upstream prediction host.
	hostPrompt := promptui.Prompt{
		Label:   "Upstream API host (empty for echo mode)",
		Default: "",
	}
	host, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host prompt: %w", err)
	}
	cfg.APIHost = strings.TrimSpace(host)

	// 3. Storage backend.
	backendPrompt := promptui.Select{
		Label: "Conversation storage",
		Items: []string{
			"sqlite — persisted across restarts",
			"memory — volatile, for development",
		},
	}
	idx, _, err := backendPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("storage selection: %w", err)
	}
	if idx == 1 {
		cfg.StorageBackend = StorageMemory
		cfg.StoragePath = ""
	} else {
		pathPrompt := promptui.Prompt{
			Label:   "Database path",
			Default: cfg.StoragePath,
		}
		path, err := pathPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("path prompt: %w", err)
		}
		cfg.StoragePath = strings.TrimSpace(path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".chatembed.yml"); err != nil {
		return nil, err
	}
	fmt.Println("\nConfiguration written to .chatembed.yml")

	return cfg, nil
}
