package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PlainPrompter runs the wizard prompts over plain line-based IO. It is the
// fallback when stdin is not a terminal, so answers can come from a pipe or
// a script.
type PlainPrompter struct {
	input   io.Reader
	output  io.Writer
	scanner *bufio.Scanner
}

// NewPlainPrompter creates a PlainPrompter reading answers from input and
// writing prompts to output
func NewPlainPrompter(input io.Reader, output io.Writer) *PlainPrompter {
	return &PlainPrompter{
		input:   input,
		output:  output,
		scanner: bufio.NewScanner(input),
	}
}

// ChooseOne presents a numbered list and returns the chosen index
func (p *PlainPrompter) ChooseOne(title string, options []Option) (int, error) {
	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = optionLabel(option)
	}

	idx, err := selectScan(p.scanner, title, labels, 0, p.output)
	if err == io.EOF {
		return -1, ErrCancelled
	}
	return idx, err
}

// FilterableChooseOne behaves like ChooseOne; typed filtering needs a terminal
func (p *PlainPrompter) FilterableChooseOne(title string, options []Option) (int, error) {
	return p.ChooseOne(title, options)
}

// Confirm asks a yes/no question
func (p *PlainPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	ok, err := confirmScan(p.scanner, message, defaultYes, p.output)
	if err == io.EOF {
		return false, ErrCancelled
	}
	return ok, err
}

// TextInput reads a single line of free text
func (p *PlainPrompter) TextInput(title, placeholder string) (string, error) {
	prompt := title
	if placeholder != "" {
		prompt = fmt.Sprintf("%s (%s)", title, placeholder)
	}
	if _, err := fmt.Fprintf(p.output, "%s\n> ", prompt); err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrCancelled
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// MultilineInput reads free text until Ctrl+D or the end of the input.
// Entering nothing is not an error; the empty string comes back instead.
func (p *PlainPrompter) MultilineInput(title, hint string) (string, error) {
	prompt := &MultilinePrompt{Prompt: title, Hint: hint}
	text, err := prompt.showScan(p.scanner, p.output)
	if err == ErrEmptyInput || err == io.EOF {
		return "", nil
	}
	return text, err
}
