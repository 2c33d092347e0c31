package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows terminal progress while a slow call runs. A disabled spinner
// stays silent so piped output is not polluted with control characters.
type Spinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSpinner creates a spinner with a message shown next to the animation
func NewSpinner(message string, enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}

	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
	)
	return &Spinner{spinner: s, enabled: true}
}

// Start begins the animation
func (s *Spinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

// Stop halts the animation and clears the line
func (s *Spinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}
