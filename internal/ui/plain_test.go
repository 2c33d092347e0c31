package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPrompter_ChooseOne(t *testing.T) {
	input := strings.NewReader("2\n")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	options := []Option{
		{Title: "feat", Description: "A new feature"},
		{Title: "fix", Description: "A bug fix"},
	}

	idx, err := p.ChooseOne("Select the type of change:", options)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	outputStr := output.String()
	assert.Contains(t, outputStr, "Select the type of change:")
	assert.Contains(t, outputStr, "feat - A new feature")
	assert.Contains(t, outputStr, "fix - A bug fix")
}

func TestPlainPrompter_ChooseOne_EOF(t *testing.T) {
	input := strings.NewReader("")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	_, err := p.ChooseOne("Select:", []Option{{Title: "feat"}})
	assert.Equal(t, ErrCancelled, err)
}

func TestPlainPrompter_FilterableChooseOne(t *testing.T) {
	// Without a terminal, filterable selection degrades to a numbered list
	input := strings.NewReader("1\n")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	options := []Option{
		{Title: "✨", Description: "Introduce new features."},
		{Title: "🐛", Description: "Fix a bug."},
	}

	idx, err := p.FilterableChooseOne("Select an emoji:", options)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Contains(t, output.String(), "Introduce new features.")
}

func TestPlainPrompter_Confirm(t *testing.T) {
	input := strings.NewReader("y\n")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	ok, err := p.Confirm("Create this commit?", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, output.String(), "[Y/n]")
}

func TestPlainPrompter_Confirm_EOF(t *testing.T) {
	input := strings.NewReader("")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	_, err := p.Confirm("Create this commit?", false)
	assert.Equal(t, ErrCancelled, err)
}

func TestPlainPrompter_TextInput(t *testing.T) {
	input := strings.NewReader("  add login endpoint  \n")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	text, err := p.TextInput("Write a short description:", "imperative, lower case")
	require.NoError(t, err)
	assert.Equal(t, "add login endpoint", text)
	assert.Contains(t, output.String(), "imperative, lower case")
}

func TestPlainPrompter_TextInput_EOF(t *testing.T) {
	input := strings.NewReader("")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	_, err := p.TextInput("Write a short description:", "")
	assert.Equal(t, ErrCancelled, err)
}

func TestPlainPrompter_MultilineInput(t *testing.T) {
	input := strings.NewReader("first line\nsecond line\n\x04")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	text, err := p.MultilineInput("Provide a longer description:", "Press Ctrl+D when finished.")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
}

func TestPlainPrompter_MultilineInput_Empty(t *testing.T) {
	input := strings.NewReader("\x04")
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	text, err := p.MultilineInput("Provide a longer description:", "")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestPlainPrompter_SequentialPrompts(t *testing.T) {
	// One reader feeds a whole wizard run; no buffered input may be lost
	// between prompts.
	script := "1\nadd login endpoint\nexplains the change\nin two lines\n\x04\ny\n"
	input := strings.NewReader(script)
	output := &bytes.Buffer{}
	p := NewPlainPrompter(input, output)

	idx, err := p.ChooseOne("Select the type of change:", []Option{
		{Title: "feat", Description: "A new feature"},
		{Title: "fix", Description: "A bug fix"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	text, err := p.TextInput("Write a short description:", "")
	require.NoError(t, err)
	assert.Equal(t, "add login endpoint", text)

	body, err := p.MultilineInput("Provide a longer description:", "")
	require.NoError(t, err)
	assert.Equal(t, "explains the change\nin two lines", body)

	ok, err := p.Confirm("Create this commit?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}
