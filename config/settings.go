package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func LoadUserConfig(path string) (*UserConfig, error) {
	cfg := &UserConfig{}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 && DebugLog != nil {
		DebugLog.Printf("[Config] Ignoring unknown settings keys: %v", undecoded)
	}

	return cfg, nil
}

// DecodeUserConfig parses settings from an in-memory TOML document.
func DecodeUserConfig(data string) (*UserConfig, error) {
	cfg := &UserConfig{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return cfg, nil
}
