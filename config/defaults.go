package config

import "time"

const (
	BackendHTTP       = "http"
	BackendOllama     = "ollama"
	BackendOpenAI     = "openai"
	BackendOpenRouter = "openrouter"
	BackendAnthropic  = "anthropic"
)

const (
	DefaultBackendURL     = "http://localhost:8000"
	DefaultRequestTimeout = 60 * time.Second
	DefaultProfileName    = "Diego Beuk"
)

func DefaultConfig() *Config {
	return &Config{
		DataDirectory:  GetDefaultDataDir(),
		BackendType:    BackendHTTP,
		BackendURL:     DefaultBackendURL,
		RequestTimeout: DefaultRequestTimeout,
		ProfileName:    DefaultProfileName,
		ScrollMode:     true,
		Keybindings:    DefaultKeybindings(),
	}
}

func GenerateUserConfigTemplate() string {
	return `# AI DJ Configuration
# Location: ~/.config/aidj/settings.toml
# This file uses TOML format: https://toml.io
# Every value can also be set from the environment (see AIDJ_* variables).

# Directory for the debug log (AIDJ_DEBUG=1)
data_directory = "~/.local/share/aidj"

[backend]
# http (career backend exposing /api/*), ollama, openai, openrouter or anthropic
type = "http"
base_url = "http://localhost:8000"

# Model for direct backends (ollama, openai, openrouter, anthropic)
model = ""

# Seconds before a backend request is abandoned
timeout_seconds = 60

# Folder of .md/.txt documents used by direct backends for "ingest"
documents_dir = ""

[profile]
# Whose career the assistant showcases
name = "Diego Beuk"

[animation]
# Empty uses the built-in header art. Accepts a .json file or a folder of .txt frames.
frames_path = ""
# 0 uses the frame set metadata (or 8 fps)
fps = 0.0
scroll_mode = true

[keybindings.modifiers]
primary = "alt"
secondary = "alt+shift"

[keybindings.actions]
# copy_last_reply = "ctrl+y"
`
}
