package convcommit

import (
	"fmt"
	"strings"
)

// Message holds every field of a Conventional Commits message. Optional
// fields use the empty string for "absent".
type Message struct {
	Type            string // commit type, suffixed with "!" when breaking
	Scope           string
	Marker          string // gitmoji glyph or shortcode
	Description     string
	Body            string // already wrapped by the caller
	JiraIssue       string // issue slug only, e.g. "ABC-123"
	BreakingDetails string
}

// Breaking reports whether the commit type carries the breaking suffix
func (m Message) Breaking() bool {
	return strings.HasSuffix(m.Type, BreakingSuffix)
}

// Validate checks that the required fields are present
func (m Message) Validate() error {
	if m.Type == "" {
		return fmt.Errorf("commit type is required")
	}
	if m.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// Header renders the first line: type(scope)!: marker description.
// The breaking "!" sits after the scope parentheses per the Conventional
// Commits grammar, even though Type stores it as a suffix.
func (m Message) Header() string {
	name := strings.TrimSuffix(m.Type, BreakingSuffix)

	var b strings.Builder
	b.WriteString(name)
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking() {
		b.WriteString(BreakingSuffix)
	}
	b.WriteString(": ")
	if m.Marker != "" {
		b.WriteString(m.Marker)
		b.WriteString(" ")
	}
	b.WriteString(m.Description)
	return b.String()
}

// Render produces the full commit message text: header, body, jira trailer
// and BREAKING CHANGE footer in that fixed order, each section separated by
// exactly one blank line, with no trailing newline.
func (m Message) Render() string {
	sections := []string{m.Header()}
	if m.Body != "" {
		sections = append(sections, m.Body)
	}
	if m.JiraIssue != "" {
		sections = append(sections, fmt.Sprintf("jira-issue: [%s]", m.JiraIssue))
	}
	if m.BreakingDetails != "" {
		sections = append(sections, fmt.Sprintf("BREAKING CHANGE: %s", m.BreakingDetails))
	}
	return strings.Join(sections, "\n\n")
}
