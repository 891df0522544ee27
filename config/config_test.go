package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var overrideVars = []string{
	"AIDJ_DATA_DIR", "AIDJ_BACKEND", "AIDJ_BACKEND_URL", "AIDJ_MODEL", "AIDJ_API_KEY",
	"AIDJ_TIMEOUT", "AIDJ_DOCUMENTS_DIR", "AIDJ_PROFILE_NAME", "AIDJ_FRAMES",
	"AIDJ_FPS", "AIDJ_SCROLL_MODE", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

// clearEnv blanks every override so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range overrideVars {
		t.Setenv(name, "")
	}
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	return path
}

func TestLoadFromDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BackendType != BackendHTTP {
		t.Errorf("backend type: got %q, want %q", cfg.BackendType, BackendHTTP)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("backend url: got %q, want %q", cfg.BackendURL, DefaultBackendURL)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("timeout: got %v, want %v", cfg.RequestTimeout, DefaultRequestTimeout)
	}
	if cfg.ProfileName != DefaultProfileName {
		t.Errorf("profile name: got %q, want %q", cfg.ProfileName, DefaultProfileName)
	}
	if !cfg.ScrollMode {
		t.Error("expected scroll mode on by default")
	}
	if cfg.FPS != 0 {
		t.Errorf("fps: got %v, want 0 (use frame metadata)", cfg.FPS)
	}
}

func TestLoadFromSettingsFile(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `
[backend]
type = "Ollama"
base_url = "http://gpu-box:11434"
model = "llama3.1:latest"
timeout_seconds = 15

[profile]
name = "Ada Lovelace"

[animation]
fps = 12.0
scroll_mode = false

[keybindings.actions]
copy_last_reply = "ctrl+y"
`)

	cfg, err := LoadFrom(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BackendType != BackendOllama {
		t.Errorf("backend type should be lowercased: got %q", cfg.BackendType)
	}
	if cfg.BackendURL != "http://gpu-box:11434" {
		t.Errorf("backend url: got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("timeout: got %v", cfg.RequestTimeout)
	}
	if cfg.ProfileName != "Ada Lovelace" {
		t.Errorf("profile name: got %q", cfg.ProfileName)
	}
	if cfg.FPS != 12 {
		t.Errorf("fps: got %v", cfg.FPS)
	}
	if cfg.ScrollMode {
		t.Error("scroll_mode = false should disable scroll mode")
	}
	if got := cfg.Keybindings.GetActionKey("copy_last_reply"); got != "ctrl+y" {
		t.Errorf("keybinding override: got %q", got)
	}
	if got := cfg.Keybindings.GetActionKey("help"); got != "alt+h" {
		t.Errorf("default modifiers should survive a partial keybindings table: got %q", got)
	}
}

func TestEnvOverridesSettings(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `
[backend]
type = "http"
base_url = "http://from-file:8000"

[profile]
name = "From File"
`)

	t.Setenv("AIDJ_BACKEND_URL", "http://from-env:9000")
	t.Setenv("AIDJ_PROFILE_NAME", "From Env")
	t.Setenv("AIDJ_FPS", "24")
	t.Setenv("AIDJ_SCROLL_MODE", "0")

	cfg, err := LoadFrom(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BackendURL != "http://from-env:9000" {
		t.Errorf("backend url: got %q", cfg.BackendURL)
	}
	if cfg.ProfileName != "From Env" {
		t.Errorf("profile name: got %q", cfg.ProfileName)
	}
	if cfg.FPS != 24 {
		t.Errorf("fps: got %v", cfg.FPS)
	}
	if cfg.ScrollMode {
		t.Error("AIDJ_SCROLL_MODE=0 should disable scroll mode")
	}
}

func TestBlankProfileNameKeepsDefault(t *testing.T) {
	clearEnv(t)

	path := writeSettings(t, `
[profile]
name = "   "
`)
	t.Setenv("AIDJ_PROFILE_NAME", " \t ")

	cfg, err := LoadFrom(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProfileName != DefaultProfileName {
		t.Errorf("profile name: got %q, want %q", cfg.ProfileName, DefaultProfileName)
	}
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("AIDJ_MODEL")
	t.Cleanup(func() { os.Unsetenv("AIDJ_MODEL") })

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("AIDJ_MODEL=from-dotenv\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "from-dotenv" {
		t.Errorf("model: got %q, want value from .env", cfg.Model)
	}
}

func TestAPIKeyFallsBackToVendorVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv("AIDJ_BACKEND", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "sk-ant-test" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.BackendType = "carrier-pigeon" },
			wantErr: true,
		},
		{
			name:    "http backend without url",
			mutate:  func(c *Config) { c.BackendURL = "" },
			wantErr: true,
		},
		{
			name:    "openai backend without key",
			mutate:  func(c *Config) { c.BackendType = BackendOpenAI },
			wantErr: true,
		},
		{
			name: "openai backend with key",
			mutate: func(c *Config) {
				c.BackendType = BackendOpenAI
				c.APIKey = "sk-test"
			},
			wantErr: false,
		},
		{
			name:    "ollama needs no key",
			mutate:  func(c *Config) { c.BackendType = BackendOllama },
			wantErr: false,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.RequestTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative fps",
			mutate:  func(c *Config) { c.FPS = -1 },
			wantErr: true,
		},
		{
			name: "unknown keybinding action",
			mutate: func(c *Config) {
				c.Keybindings.Actions = map[string]string{"teleport": "alt+t"}
			},
			wantErr: true,
		},
		{
			name: "bare character binding",
			mutate: func(c *Config) {
				c.Keybindings.Actions = map[string]string{"help": "h"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTemplateMatchesDefaults(t *testing.T) {
	userCfg, err := DecodeUserConfig(GenerateUserConfigTemplate())
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}

	cfg := DefaultConfig()
	cfg.applyUserConfig(userCfg)

	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("template base_url drifted from default: %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("template timeout drifted from default: %v", cfg.RequestTimeout)
	}
	if cfg.ProfileName != DefaultProfileName {
		t.Errorf("template profile drifted from default: %q", cfg.ProfileName)
	}
	if !cfg.ScrollMode {
		t.Error("template should keep scroll mode on")
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/dj")

	if got := ExpandPath("~/music"); got != "/home/dj/music" {
		t.Errorf("got %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("empty path should stay empty, got %q", got)
	}
}
