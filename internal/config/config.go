package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/pkg/convcommit"
)

// Configuration keys shared by the global and project conf files
const (
	keyEmojiFormat   = "EMOJI_FORMAT"
	keyCustomTypes   = "CUSTOM_COMMIT_TYPES"
	keyScopes        = "SCOPES"
	keyIncludeJira   = "INCLUDE_JIRA_ISSUE_SLUG"
	keyVSCodeCompat  = "VSCODE_CONVENTIONAL_COMMIT_COMPAT"
	keyCheckUnstaged = "CHECK_UNSTAGED"
	keyShowEditor    = "SHOW_EDITOR"
	keyAutoCommit    = "AUTO_COMMIT"
)

const defaultConfTemplate = `# commitwiz configuration
# See: https://github.com/commitwiz/commitwiz

# How the gitmoji marker is rendered in the header: "emoji" or "code"
EMOJI_FORMAT="emoji"

# Extra commit types offered after the built-in ones
CUSTOM_COMMIT_TYPES=()

# Scopes offered during the scope step
SCOPES=()

# Offer a jira-issue trailer extracted from the branch name
INCLUDE_JIRA_ISSUE_SLUG=false

# Persist new scopes into .vscode/settings.json instead of the project config
VSCODE_CONVENTIONAL_COMMIT_COMPAT=false

# Warn about unstaged changes before composing
CHECK_UNSTAGED=true

# Open the editor on the prepared message before committing
SHOW_EDITOR=false

# Commit without a final confirmation prompt
AUTO_COMMIT=false
`

// Config represents the effective configuration for one invocation
type Config struct {
	EmojiFormat       convcommit.EmojiFormat `json:"emoji_format"`
	CustomCommitTypes []string               `json:"custom_commit_types"`
	Scopes            []string               `json:"scopes"`
	IncludeJiraSlug   bool                   `json:"include_jira_issue_slug"`
	VSCodeCompat      bool                   `json:"vscode_compat"`
	CheckUnstaged     bool                   `json:"check_unstaged"`
	ShowEditor        bool                   `json:"show_editor"`
	AutoCommit        bool                   `json:"auto_commit"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		EmojiFormat:   convcommit.DefaultEmojiFormat(),
		CheckUnstaged: true,
	}
}

// Paths locates the configuration sources for one invocation
type Paths struct {
	GlobalFile  string
	ProjectFile string
	VSCodeFile  string
}

// DefaultPaths returns the standard source locations. repoRoot may be empty
// when running outside a repository; the project-level sources are then
// skipped.
func DefaultPaths(repoRoot string) (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to locate user config directory: %w", err)
	}

	paths := Paths{
		GlobalFile: filepath.Join(configDir, "commitwiz", "commitwiz.conf"),
	}
	if repoRoot != "" {
		paths.ProjectFile = filepath.Join(repoRoot, ".commitwiz.conf")
		paths.VSCodeFile = filepath.Join(repoRoot, ".vscode", "settings.json")
	}
	return paths, nil
}

// Load builds the effective configuration by folding the sources in
// precedence order: built-in defaults, global file, project file, VSCode
// settings (scopes only), COMMITWIZ_* environment variables. Scope lists are
// unioned across sources, sorted and deduplicated; every other field is
// last-writer-wins. A malformed source is skipped with a warning.
//
// When the global file is absent it is created with the defaults first; this
// bootstrap write is the only side effect of Load.
func Load(paths Paths) (*Config, error) {
	cfg := DefaultConfig()

	if err := ensureGlobalConf(paths.GlobalFile); err != nil {
		return nil, fmt.Errorf("failed to bootstrap global config: %w", err)
	}

	applyConfFile(cfg, paths.GlobalFile)
	applyConfFile(cfg, paths.ProjectFile)
	applyVSCodeScopes(cfg, paths.VSCodeFile)
	applyEnv(cfg)

	cfg.Scopes = normalizeScopes(cfg.Scopes)
	log.DebugConfig("effective config", cfg)
	return cfg, nil
}

// ensureGlobalConf writes the default config file on first run
func ensureGlobalConf(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	log.Debug("created global config at %s", path)
	return nil
}

// applyConfFile folds one conf file into cfg. Missing files are skipped
// silently; unreadable or malformed files are skipped with a warning.
func applyConfFile(cfg *Config, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("skipping config %s: %v", path, err)
		}
		return
	}

	decls, err := parseConf(data)
	if err != nil {
		log.Warn("skipping malformed config %s: %v", path, err)
		return
	}
	applyDecls(cfg, decls, path)
}

func applyDecls(cfg *Config, decls map[string]decl, source string) {
	for key, d := range decls {
		switch key {
		case keyEmojiFormat:
			format := convcommit.EmojiFormat(d.scalar)
			if d.isArray || !format.IsValid() {
				warnValue(source, key)
				continue
			}
			cfg.EmojiFormat = format
		case keyCustomTypes:
			if !d.isArray {
				warnValue(source, key)
				continue
			}
			if len(d.items) == 0 {
				cfg.CustomCommitTypes = nil
			} else {
				cfg.CustomCommitTypes = append([]string(nil), d.items...)
			}
		case keyScopes:
			if !d.isArray {
				warnValue(source, key)
				continue
			}
			cfg.Scopes = append(cfg.Scopes, d.items...)
		case keyIncludeJira:
			applyBool(&cfg.IncludeJiraSlug, d, source, key)
		case keyVSCodeCompat:
			applyBool(&cfg.VSCodeCompat, d, source, key)
		case keyCheckUnstaged:
			applyBool(&cfg.CheckUnstaged, d, source, key)
		case keyShowEditor:
			applyBool(&cfg.ShowEditor, d, source, key)
		case keyAutoCommit:
			applyBool(&cfg.AutoCommit, d, source, key)
		default:
			log.Debug("ignoring unknown key %s in %s", key, source)
		}
	}
}

// applyBool accepts only the literal true/false the conf grammar defines
func applyBool(dst *bool, d decl, source, key string) {
	switch {
	case d.isArray:
		warnValue(source, key)
	case d.scalar == "true":
		*dst = true
	case d.scalar == "false":
		*dst = false
	default:
		warnValue(source, key)
	}
}

func warnValue(source, key string) {
	log.Warn("ignoring invalid value for %s in %s", key, source)
}

// normalizeScopes sorts lexicographically and removes duplicates
func normalizeScopes(scopes []string) []string {
	if len(scopes) == 0 {
		return nil
	}
	sort.Strings(scopes)
	out := scopes[:0]
	var prev string
	for i, s := range scopes {
		if s == "" || (i > 0 && s == prev) {
			continue
		}
		out = append(out, s)
		prev = s
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
