package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aidj/config"
	"aidj/provider"
	"aidj/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

// showError runs the standalone error modal and exits.
func showError(title, message, hint string) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, message).WithHint(hint),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		showError("Configuration Error", err.Error(),
			fmt.Sprintf("Check %s or the AIDJ_* environment variables.", config.GetSettingsFilePath()))
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	backend, err := provider.InitializeBackend(cfg)
	if err != nil {
		showError("Backend Error", fmt.Sprintf("Could not set up the %q backend:\n\n%v", cfg.BackendType, err),
			"Set AIDJ_BACKEND or [backend] type in settings.toml to switch backends.")
	}

	p := tea.NewProgram(
		ui.NewAppView(cfg, backend, Version, License),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running aidj: %v\n", err)
		os.Exit(1)
	}
}
