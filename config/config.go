package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type BackendConfig struct {
	Type           string `toml:"type"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	DocumentsDir   string `toml:"documents_dir"`
}

type ProfileConfig struct {
	Name string `toml:"name"`
}

type AnimationConfig struct {
	FramesPath string  `toml:"frames_path"`
	FPS        float64 `toml:"fps"`
	ScrollMode *bool   `toml:"scroll_mode"`
}

// UserConfig mirrors settings.toml.
type UserConfig struct {
	DataDirectory string            `toml:"data_directory"`
	Backend       BackendConfig     `toml:"backend"`
	Profile       ProfileConfig     `toml:"profile"`
	Animation     AnimationConfig   `toml:"animation"`
	Keybindings   KeyBindingsConfig `toml:"keybindings"`
}

type Config struct {
	DataDirectory  string
	BackendType    string
	BackendURL     string
	Model          string
	APIKey         string
	RequestTimeout time.Duration
	DocumentsDir   string
	ProfileName    string
	FramesPath     string
	FPS            float64
	ScrollMode     bool
	Keybindings    *KeyBindingsConfig
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// Validate reports settings that make the session unusable.
func (c *Config) Validate() error {
	switch c.BackendType {
	case BackendHTTP:
		if c.BackendURL == "" {
			return fmt.Errorf("backend.base_url is required for the %q backend", c.BackendType)
		}
	case BackendOllama:
	case BackendOpenAI, BackendOpenRouter, BackendAnthropic:
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %q backend (set AIDJ_API_KEY)", c.BackendType)
		}
	default:
		return fmt.Errorf("unknown backend type: %q", c.BackendType)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("backend.timeout_seconds must be positive")
	}
	if c.FPS < 0 {
		return fmt.Errorf("animation.fps must not be negative")
	}
	if ok, warning := c.Keybindings.Validate(); !ok {
		return fmt.Errorf("invalid keybindings: %s", warning)
	}
	return nil
}

func (c *Config) applyUserConfig(u *UserConfig) {
	if u.DataDirectory != "" {
		c.DataDirectory = u.DataDirectory
	}
	if u.Backend.Type != "" {
		c.BackendType = strings.ToLower(u.Backend.Type)
	}
	if u.Backend.BaseURL != "" {
		c.BackendURL = u.Backend.BaseURL
	}
	if u.Backend.Model != "" {
		c.Model = u.Backend.Model
	}
	if u.Backend.APIKey != "" {
		c.APIKey = u.Backend.APIKey
	}
	if u.Backend.TimeoutSeconds != 0 {
		c.RequestTimeout = time.Duration(u.Backend.TimeoutSeconds) * time.Second
	}
	if u.Backend.DocumentsDir != "" {
		c.DocumentsDir = u.Backend.DocumentsDir
	}
	if name := strings.TrimSpace(u.Profile.Name); name != "" {
		c.ProfileName = name
	}
	if u.Animation.FramesPath != "" {
		c.FramesPath = u.Animation.FramesPath
	}
	if u.Animation.FPS != 0 {
		c.FPS = u.Animation.FPS
	}
	if u.Animation.ScrollMode != nil {
		c.ScrollMode = *u.Animation.ScrollMode
	}

	kb := u.Keybindings
	if kb.Modifiers.Primary == "" {
		kb.Modifiers.Primary = c.Keybindings.Primary()
	}
	if kb.Modifiers.Secondary == "" {
		kb.Modifiers.Secondary = c.Keybindings.Secondary()
	}
	c.Keybindings = &kb
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AIDJ_DATA_DIR"); v != "" {
		c.DataDirectory = v
	}
	if v := os.Getenv("AIDJ_BACKEND"); v != "" {
		c.BackendType = strings.ToLower(v)
	}
	if v := os.Getenv("AIDJ_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("AIDJ_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("AIDJ_API_KEY"); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(apiKeyEnvFor(c.BackendType))
	}
	if v := os.Getenv("AIDJ_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("AIDJ_DOCUMENTS_DIR"); v != "" {
		c.DocumentsDir = v
	}
	if v := strings.TrimSpace(os.Getenv("AIDJ_PROFILE_NAME")); v != "" {
		c.ProfileName = v
	}
	if v := os.Getenv("AIDJ_FRAMES"); v != "" {
		c.FramesPath = v
	}
	if v := os.Getenv("AIDJ_FPS"); v != "" {
		if fps, err := strconv.ParseFloat(v, 64); err == nil {
			c.FPS = fps
		}
	}
	if v := os.Getenv("AIDJ_SCROLL_MODE"); v != "" {
		c.ScrollMode = v == "true" || v == "1"
	}
}

// apiKeyEnvFor returns the conventional vendor variable for a backend type.
func apiKeyEnvFor(backendType string) string {
	switch backendType {
	case BackendOpenAI:
		return "OPENAI_API_KEY"
	case BackendOpenRouter:
		return "OPENROUTER_API_KEY"
	case BackendAnthropic:
		return "ANTHROPIC_API_KEY"
	}
	return ""
}

func CheckDebug() bool {
	debug := os.Getenv("AIDJ_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	if err := EnsureDir(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create data directory %s: %v\n", dataDir, err)
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: prompts and backend replies end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (AIDJ_DEBUG=%s) ===", os.Getenv("AIDJ_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// Load builds the configuration from defaults, settings.toml, .env and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	return LoadFrom(GetSettingsFilePath(), ".env")
}

func LoadFrom(settingsPath, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" && FileExists(envFile) {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if FileExists(settingsPath) {
		userCfg, err := LoadUserConfig(settingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		cfg.applyUserConfig(userCfg)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
