// Package progress provides the in-progress indicator that bounds each
// network round-trip.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Config configures a spinner.
type Config struct {
	// Enabled turns the spinner off entirely, e.g. for JSON output or
	// non-TTY streams. A disabled spinner is a no-op, not an error.
	Enabled bool
	// Writer receives the spinner frames; defaults to stderr so stdout
	// stays clean for data.
	Writer io.Writer
}

// DefaultConfig returns the standard spinner configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Writer:  os.Stderr,
	}
}

// Spinner wraps a terminal spinner bounding a single remote call.
type Spinner struct {
	config *Config
	s      *spinner.Spinner
	active bool
	mu     sync.Mutex
}

// NewSpinner creates a new spinner.
func NewSpinner(config *Config) *Spinner {
	if config == nil {
		config = DefaultConfig()
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &Spinner{
		config: config,
		s:      spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(writer)),
	}
}

// Start starts the spinner with a message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.config.Enabled || s.active {
		return
	}

	s.s.Suffix = " " + message
	s.s.Start()
	s.active = true
}

// Stop stops the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.s.Stop()
	s.active = false
}

// IsActive reports whether the spinner is running.
func (s *Spinner) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
