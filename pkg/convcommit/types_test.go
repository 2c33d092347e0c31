package convcommit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmojiFormat(t *testing.T) {
	assert.Equal(t, EmojiFormatEmoji, ParseEmojiFormat("emoji"))
	assert.Equal(t, EmojiFormatCode, ParseEmojiFormat("code"))
	assert.Equal(t, DefaultEmojiFormat(), ParseEmojiFormat("shortcode"))
	assert.Equal(t, DefaultEmojiFormat(), ParseEmojiFormat(""))
}

func TestEmojiFormat_IsValid(t *testing.T) {
	assert.True(t, EmojiFormatEmoji.IsValid())
	assert.True(t, EmojiFormatCode.IsValid())
	assert.False(t, EmojiFormat("glyph").IsValid())
}

func TestBuiltinTypes_Order(t *testing.T) {
	types := BuiltinTypes()
	require.Len(t, types, 11)
	assert.Equal(t, "feat", types[0].Name)
	assert.Equal(t, "fix", types[1].Name)
	assert.Equal(t, "revert", types[10].Name)
}

func TestBuiltinTypes_ReturnsCopy(t *testing.T) {
	types := BuiltinTypes()
	types[0].Name = "mutated"
	assert.Equal(t, "feat", BuiltinTypes()[0].Name)
}

func TestTypeOptions_CustomAndBreaking(t *testing.T) {
	options := TypeOptions([]string{"wip", "", "deps"})

	require.Len(t, options, 14) // 11 built-in + 2 custom + breaking, empty skipped
	assert.Equal(t, "wip", options[11].Name)
	assert.Equal(t, "deps", options[12].Name)
	assert.Equal(t, BreakingChangeName, options[13].Name)
}

func TestTypeOptions_NoCustom(t *testing.T) {
	options := TypeOptions(nil)
	require.Len(t, options, 12)
	assert.Equal(t, BreakingChangeName, options[len(options)-1].Name)
}
