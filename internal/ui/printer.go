package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// StepPrinterOption is a functional option for StepPrinter
type StepPrinterOption func(*StepPrinter)

// WithColor enables or disables color output
func WithColor(enabled bool) StepPrinterOption {
	return func(p *StepPrinter) {
		p.colorEnabled = enabled
	}
}

// StepPrinter prints wizard progress and results to the terminal
type StepPrinter struct {
	writer       io.Writer
	colorEnabled bool
}

// NewStepPrinter creates a new StepPrinter
func NewStepPrinter(writer io.Writer, opts ...StepPrinterOption) *StepPrinter {
	p := &StepPrinter{
		writer:       writer,
		colorEnabled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PrintStep prints a completed wizard step and the answer it recorded
func (p *StepPrinter) PrintStep(label, value string) error {
	if p.colorEnabled {
		green := color.New(color.FgGreen)
		_, err := green.Fprintf(p.writer, "✓ %s: %s\n", label, value)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "✓ %s: %s\n", label, value)
	return err
}

// PrintProgress prints a progress message
func (p *StepPrinter) PrintProgress(message string) error {
	if p.colorEnabled {
		yellow := color.New(color.FgYellow)
		_, err := yellow.Fprintf(p.writer, "⏳ %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "⏳ %s\n", message)
	return err
}

// PrintInfo prints an info message
func (p *StepPrinter) PrintInfo(message string) error {
	if p.colorEnabled {
		cyan := color.New(color.FgCyan)
		_, err := cyan.Fprintf(p.writer, "ℹ️  %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "ℹ️  %s\n", message)
	return err
}

// PrintSuccess prints a success message
func (p *StepPrinter) PrintSuccess(message string) error {
	if p.colorEnabled {
		green := color.New(color.FgGreen)
		_, err := green.Fprintf(p.writer, "✅ %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "✅ %s\n", message)
	return err
}

// PrintWarning prints a warning message
func (p *StepPrinter) PrintWarning(message string) error {
	if p.colorEnabled {
		yellow := color.New(color.FgYellow)
		_, err := yellow.Fprintf(p.writer, "⚠️  %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "⚠️  %s\n", message)
	return err
}

// PrintError prints an error message
func (p *StepPrinter) PrintError(message string) error {
	if p.colorEnabled {
		red := color.New(color.FgRed)
		_, err := red.Fprintf(p.writer, "❌ Error: %s\n", message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "❌ Error: %s\n", message)
	return err
}

// PrintMessagePreview displays the composed commit message between dividers
func (p *StepPrinter) PrintMessagePreview(message string) error {
	divider := strings.Repeat("─", 29)

	if p.colorEnabled {
		bold := color.New(color.Bold)
		cyan := color.New(color.FgCyan)

		if _, err := bold.Fprintln(p.writer, "\n📝 Commit message:"); err != nil {
			return err
		}
		if _, err := cyan.Fprintln(p.writer, divider); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.writer, message); err != nil {
			return err
		}
		_, err := cyan.Fprintln(p.writer, divider)
		return err
	}

	if _, err := fmt.Fprintln(p.writer, "\n📝 Commit message:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.writer, divider); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(p.writer, message); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.writer, divider)
	return err
}

// Newline prints a newline
func (p *StepPrinter) Newline() error {
	_, err := fmt.Fprintln(p.writer)
	return err
}
