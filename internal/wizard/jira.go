package wizard

import "regexp"

var issuePattern = regexp.MustCompile(`[A-Z]+-[0-9]+`)

// IssueSlug extracts the first issue key, such as ABC-123, from a branch
// name. The empty string means the branch carries no key.
func IssueSlug(branch string) string {
	return issuePattern.FindString(branch)
}
