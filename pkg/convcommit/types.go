package convcommit

// EmojiFormat controls how a gitmoji marker appears in the header line
type EmojiFormat string

const (
	// EmojiFormatEmoji renders the marker as the unicode glyph (e.g. ✨)
	EmojiFormatEmoji EmojiFormat = "emoji"
	// EmojiFormatCode renders the marker as the shortcode (e.g. :sparkles:)
	EmojiFormatCode EmojiFormat = "code"
)

// String returns the string representation of the format
func (f EmojiFormat) String() string {
	return string(f)
}

// IsValid checks if the format is valid
func (f EmojiFormat) IsValid() bool {
	switch f {
	case EmojiFormatEmoji, EmojiFormatCode:
		return true
	default:
		return false
	}
}

// DefaultEmojiFormat returns the default format
func DefaultEmojiFormat() EmojiFormat {
	return EmojiFormatEmoji
}

// ParseEmojiFormat parses a string to an EmojiFormat
func ParseEmojiFormat(s string) EmojiFormat {
	f := EmojiFormat(s)
	if f.IsValid() {
		return f
	}
	return DefaultEmojiFormat()
}

// BreakingChangeName is the distinguished type-selection entry that marks the
// commit as breaking and triggers a second selection round for the real type.
const BreakingChangeName = "BREAKING CHANGE"

// BreakingSuffix is appended to the chosen type of a breaking commit.
const BreakingSuffix = "!"

// TypeOption is one selectable commit type with its description
type TypeOption struct {
	Name        string
	Description string
}

// Descriptions follow commitlint's config-conventional wording.
var builtinTypes = []TypeOption{
	{Name: "feat", Description: "A new feature"},
	{Name: "fix", Description: "A bug fix"},
	{Name: "docs", Description: "Documentation only changes"},
	{Name: "style", Description: "Changes that do not affect the meaning of the code"},
	{Name: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
	{Name: "perf", Description: "A code change that improves performance"},
	{Name: "test", Description: "Adding missing tests or correcting existing tests"},
	{Name: "build", Description: "Changes that affect the build system or external dependencies"},
	{Name: "ci", Description: "Changes to CI configuration files and scripts"},
	{Name: "chore", Description: "Other changes that don't modify src or test files"},
	{Name: "revert", Description: "Reverts a previous commit"},
}

// BuiltinTypes returns the built-in commit types in presentation order
func BuiltinTypes() []TypeOption {
	out := make([]TypeOption, len(builtinTypes))
	copy(out, builtinTypes)
	return out
}

// TypeOptions returns the full selectable list: built-in types, then custom
// types, then the BREAKING CHANGE entry last.
func TypeOptions(custom []string) []TypeOption {
	out := BuiltinTypes()
	for _, name := range custom {
		if name == "" {
			continue
		}
		out = append(out, TypeOption{Name: name, Description: "Custom commit type"})
	}
	out = append(out, TypeOption{
		Name:        BreakingChangeName,
		Description: "Introduce a change that breaks existing behavior",
	})
	return out
}
