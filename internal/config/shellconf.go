package config

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// decl is one KEY=value declaration parsed from a conf file. Exactly one of
// the scalar/array forms is populated.
type decl struct {
	scalar  string
	items   []string
	isArray bool
}

var keyPattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// parseConf parses the shell-style declaration grammar used by the global and
// project config files: KEY=value, KEY="value", KEY=(a "b c"), # comments and
// blank lines. Later declarations of the same key win. A syntax error fails
// the whole file so the caller can skip the layer.
func parseConf(data []byte) (map[string]decl, error) {
	decls := make(map[string]decl)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, found := strings.Cut(line, "=")
		if !found || !keyPattern.MatchString(key) {
			return nil, fmt.Errorf("line %d: not a KEY=value declaration", lineNo)
		}

		value, err := parseValue(rest)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		decls[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return decls, nil
}

func parseValue(rest string) (decl, error) {
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, "(") {
		inner, after, err := cutArray(rest)
		if err != nil {
			return decl{}, err
		}
		if !trailingOK(after) {
			return decl{}, fmt.Errorf("unexpected text after array")
		}
		// "#" has no comment meaning inside the parentheses
		items, err := splitWords(inner, false)
		if err != nil {
			return decl{}, err
		}
		if items == nil {
			items = []string{}
		}
		return decl{items: items, isArray: true}, nil
	}

	words, err := splitWords(rest, true)
	if err != nil {
		return decl{}, err
	}
	switch len(words) {
	case 0:
		return decl{}, nil
	case 1:
		return decl{scalar: words[0]}, nil
	default:
		return decl{}, fmt.Errorf("unexpected text after value")
	}
}

// cutArray splits "(...)rest" at the closing parenthesis, honoring double
// quotes so a ")" inside a quoted element does not terminate the array.
func cutArray(s string) (inner, after string, err error) {
	inQuote := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '\\' && i+1 < len(s) {
				i++
				continue
			}
			if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case ')':
			return s[1:i], s[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("unterminated array")
}

// splitWords splits s into words, honoring double quotes with \" and \\
// escapes. With allowComment, a "#" at the start of a word discards the rest
// of the line.
func splitWords(s string, allowComment bool) ([]string, error) {
	var words []string
	var cur strings.Builder
	started := false

	flush := func() {
		if started {
			words = append(words, cur.String())
			cur.Reset()
			started = false
		}
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			flush()
			i++
		case c == '#' && !started && allowComment:
			flush()
			return words, nil
		case c == '"':
			started = true
			i++
			closed := false
			for i < len(s) {
				if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
					cur.WriteByte(s[i+1])
					i += 2
					continue
				}
				if s[i] == '"' {
					i++
					closed = true
					break
				}
				cur.WriteByte(s[i])
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quote")
			}
		default:
			started = true
			cur.WriteByte(c)
			i++
		}
	}
	flush()
	return words, nil
}

func trailingOK(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.HasPrefix(s, "#")
}

// quoteWord returns s as a double-quoted shell word
func quoteWord(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// formatArray renders items as a shell array literal with quoted elements
func formatArray(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quoteWord(item)
	}
	return "(" + strings.Join(quoted, " ") + ")"
}
