package provider

import (
	"context"
	"time"

	"aidj/config"
	"aidj/model"
)

const initialIngestTimeout = 30 * time.Second

// InitializeBackend creates the backend described by the application config.
//
// Direct backends get a best-effort ingest of their documents directory so
// the first question already has knowledge to draw on; a failed ingest is
// logged and the user can retry with the ingest command.
func InitializeBackend(cfg *config.Config) (model.Backend, error) {
	bcfg := Config{
		Type:         BackendType(cfg.BackendType),
		BaseURL:      cfg.BackendURL,
		Model:        cfg.Model,
		APIKey:       cfg.APIKey,
		Timeout:      cfg.RequestTimeout,
		DocumentsDir: cfg.DocumentsDir,
		Subject:      cfg.ProfileName,
	}

	// the default URL points at the career service, not an LLM vendor
	if bcfg.Type != BackendTypeHTTP && bcfg.BaseURL == config.DefaultBackendURL {
		bcfg.BaseURL = ""
	}

	b, err := NewBackend(bcfg)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Failed to create %s backend: %v", bcfg.Type, err)
		}
		return nil, err
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Provider] Initialized %s backend: %s", bcfg.Type, b.Name())
	}

	if direct, ok := b.(*DirectBackend); ok && direct.KnowledgeBase().Dir() != "" {
		ctx, cancel := context.WithTimeout(context.Background(), initialIngestTimeout)
		defer cancel()
		if _, err := direct.Ingest(ctx); err != nil && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Initial ingest failed: %v", err)
		}
	}

	return b, nil
}
