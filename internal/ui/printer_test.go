package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStepPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)
	require.NotNil(t, printer)
}

func TestStepPrinter_PrintStep(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf, WithColor(false))

	err := printer.PrintStep("type", "feat")
	require.NoError(t, err)
	assert.Equal(t, "✓ type: feat\n", buf.String())
}

func TestStepPrinter_PrintProgress(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	err := printer.PrintProgress("Staging all changes...")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Staging")
}

func TestStepPrinter_PrintInfo(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	err := printer.PrintInfo("Nothing staged yet")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Nothing staged")
}

func TestStepPrinter_PrintWarning(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	err := printer.PrintWarning("could not save scope")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "could not save scope")
}

func TestStepPrinter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	err := printer.PrintError("something went wrong")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "wrong")
}

func TestStepPrinter_PrintMessagePreview(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	message := "feat(auth): add login\n\nImplement JWT authentication\n\nBREAKING CHANGE: sessions reset"
	err := printer.PrintMessagePreview(message)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "feat(auth): add login")
	assert.Contains(t, output, "JWT authentication")
	assert.Contains(t, output, "─")
}

func TestStepPrinterOptions(t *testing.T) {
	var buf bytes.Buffer

	t.Run("with color disabled", func(t *testing.T) {
		printer := NewStepPrinter(&buf, WithColor(false))
		require.NotNil(t, printer)
		assert.False(t, printer.colorEnabled)
	})

	t.Run("color enabled by default", func(t *testing.T) {
		printer := NewStepPrinter(&buf)
		require.NotNil(t, printer)
		assert.True(t, printer.colorEnabled)
	})
}

func TestStepPrinter_Newline(t *testing.T) {
	var buf bytes.Buffer
	printer := NewStepPrinter(&buf)

	err := printer.Newline()
	require.NoError(t, err)
	assert.Equal(t, "\n", buf.String())
}

func TestStepPrinter_CustomWriter(t *testing.T) {
	// Test with a custom io.Writer
	pr, pw := io.Pipe()
	defer pr.Close()

	printer := NewStepPrinter(pw, WithColor(false))

	go func() {
		defer pw.Close()
		_ = printer.PrintStep("scope", "api")
	}()

	buf := make([]byte, 100)
	n, _ := pr.Read(buf)
	assert.Contains(t, string(buf[:n]), "scope")
}
