package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commitwiz/commitwiz/internal/log"
)

// vscodeScopesKey is the flat settings.json key used by the VSCode
// Conventional Commits extension
const vscodeScopesKey = "conventionalCommits.scopes"

// applyVSCodeScopes folds the extension's scope list into cfg. Only scopes
// are read from this source; every other settings key is ignored.
func applyVSCodeScopes(cfg *Config, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("skipping VSCode settings %s: %v", path, err)
		}
		return
	}

	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("skipping malformed VSCode settings %s: %v", path, err)
		return
	}

	raw, ok := settings[vscodeScopesKey]
	if !ok {
		return
	}
	items, ok := raw.([]any)
	if !ok {
		log.Warn("ignoring %s in %s: not an array", vscodeScopesKey, path)
		return
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			cfg.Scopes = append(cfg.Scopes, s)
		}
	}
}

// addVSCodeScope appends scope to the extension's scope array, creating the
// settings document and its directory when absent. All other keys in the
// document are preserved.
func addVSCodeScope(path, scope string) error {
	settings := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("failed to parse VSCode settings: %w", err)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	default:
		return fmt.Errorf("failed to read VSCode settings: %w", err)
	}

	var scopes []any
	if raw, ok := settings[vscodeScopesKey].([]any); ok {
		scopes = raw
	}
	settings[vscodeScopesKey] = append(scopes, scope)

	// VSCode's own editor default
	out, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode VSCode settings: %w", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write VSCode settings: %w", err)
	}
	return nil
}
