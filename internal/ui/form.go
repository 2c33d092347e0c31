package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormPrompter runs the wizard prompts as interactive terminal forms
type FormPrompter struct{}

// NewFormPrompter creates a FormPrompter
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{}
}

// runField wraps a single field in a form and maps user aborts to ErrCancelled
func runField(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithTheme(huh.ThemeCharm())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// ChooseOne presents a select field and returns the chosen index
func (f *FormPrompter) ChooseOne(title string, options []Option) (int, error) {
	var idx int

	huhOpts := make([]huh.Option[int], len(options))
	for i, option := range options {
		huhOpts[i] = huh.NewOption(optionLabel(option), i)
	}

	sel := huh.NewSelect[int]().
		Title(title).
		Options(huhOpts...).
		Value(&idx)

	if err := runField(sel); err != nil {
		return -1, err
	}
	return idx, nil
}

// FilterableChooseOne presents a list that narrows as the user types
func (f *FormPrompter) FilterableChooseOne(title string, options []Option) (int, error) {
	return runPicker(title, options)
}

// Confirm asks a yes/no question
func (f *FormPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	ok := defaultYes

	confirm := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := runField(confirm); err != nil {
		return false, err
	}
	return ok, nil
}

// TextInput reads a single line of free text
func (f *FormPrompter) TextInput(title, placeholder string) (string, error) {
	var text string

	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&text)

	if err := runField(input); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// MultilineInput reads free text in a text area
func (f *FormPrompter) MultilineInput(title, hint string) (string, error) {
	var text string

	area := huh.NewText().
		Title(title).
		Description(hint).
		Lines(6).
		Value(&text)

	if err := runField(area); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
