package theme

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultTheme(t *testing.T) {
	th := Default()
	if th.Button.BackgroundColor == "" {
		t.Error("default button background color missing")
	}
	if th.ChatWindow.TextInput.Placeholder == "" {
		t.Error("default text input placeholder missing")
	}
	if th.ChatWindow.Height <= 0 || th.ChatWindow.Width <= 0 {
		t.Errorf("default window size invalid: %dx%d", th.ChatWindow.Width, th.ChatWindow.Height)
	}
}

func TestThemeJSONShape(t *testing.T) {
	// The widget loader consumes camelCase keys.
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"chatWindow"`, `"botMessage"`, `"userMessage"`, `"textInput"`, `"backgroundColor"`, `"tooltipMessage"`} {
		if !strings.Contains(s, key) {
			t.Errorf("missing key %s in %s", key, s)
		}
	}
}
