package ui

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a prompt with Esc or Ctrl+C
var ErrCancelled = errors.New("prompt cancelled")

// Option is a single selectable entry in a choice prompt
type Option struct {
	Title       string
	Description string
}

// Prompter collects wizard answers from the user
type Prompter interface {
	// ChooseOne presents a fixed list of options and returns the chosen index
	ChooseOne(title string, options []Option) (int, error)

	// FilterableChooseOne presents a list that can be narrowed by typing
	FilterableChooseOne(title string, options []Option) (int, error)

	// Confirm asks a yes/no question
	Confirm(message string, defaultYes bool) (bool, error)

	// TextInput reads a single line of free text
	TextInput(title, placeholder string) (string, error)

	// MultilineInput reads free text until Ctrl+D, returning "" when the
	// user enters nothing
	MultilineInput(title, hint string) (string, error)
}

// NewPrompter returns the interactive form prompter when stdin is a terminal
// and a plain line-based prompter otherwise, so answers can be piped in
func NewPrompter() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return NewFormPrompter()
	}
	return NewPlainPrompter(os.Stdin, os.Stdout)
}

// optionLabel renders an option for prompters that show a single line per entry
func optionLabel(option Option) string {
	if option.Description == "" {
		return option.Title
	}
	return option.Title + " - " + option.Description
}
