package config

import (
	"fmt"
	"os"
	"strings"
)

const projectConfHeader = `# commitwiz project configuration
# See: https://github.com/commitwiz/commitwiz
`

// AddScope persists a newly entered scope and adds it to the in-memory
// config. With VSCodeCompat the target is the extension settings document,
// otherwise the project conf file. Persisted entries are not deduplicated
// here; Load's merge takes care of that on the next run.
func AddScope(scope string, cfg *Config, paths Paths) error {
	if scope == "" {
		return fmt.Errorf("scope is empty")
	}

	var err error
	if cfg.VSCodeCompat {
		if paths.VSCodeFile == "" {
			return fmt.Errorf("no VSCode settings path available")
		}
		err = addVSCodeScope(paths.VSCodeFile, scope)
	} else {
		if paths.ProjectFile == "" {
			return fmt.Errorf("no project config path available")
		}
		err = addConfScope(paths.ProjectFile, scope)
	}
	if err != nil {
		return err
	}

	cfg.Scopes = normalizeScopes(append(cfg.Scopes, scope))
	return nil
}

// addConfScope appends scope to the last SCOPES declaration of the project
// conf file, or appends a new declaration. Every other line is left
// byte-identical. A missing file is created with a header comment.
func addConfScope(path, scope string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content := projectConfHeader + "\n" + keyScopes + "=" + formatArray([]string{scope}) + "\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to create project config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read project config: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		updated, ok := appendToScopesDecl(lines[i], scope)
		if !ok {
			continue
		}
		lines[i] = updated
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
			return fmt.Errorf("failed to write project config: %w", err)
		}
		return nil
	}

	out := string(data)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += keyScopes + "=" + formatArray([]string{scope}) + "\n"
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write project config: %w", err)
	}
	return nil
}

// appendToScopesDecl inserts scope before the closing parenthesis of a
// SCOPES array declaration, preserving anything after it (e.g. a comment).
func appendToScopesDecl(line, scope string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, keyScopes+"=(") {
		return "", false
	}

	valueStart := strings.Index(line, "=") + 1
	inner, _, err := cutArray(line[valueStart:])
	if err != nil {
		return "", false
	}
	closeIdx := valueStart + 1 + len(inner)

	insertion := quoteWord(scope)
	if strings.TrimSpace(inner) != "" && !strings.HasSuffix(inner, " ") && !strings.HasSuffix(inner, "\t") {
		insertion = " " + insertion
	}
	return line[:closeIdx] + insertion + line[closeIdx:], true
}
