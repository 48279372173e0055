/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's diagnostic output on stderr.
// Debug output is off unless verbose; SetOutput(io.Discard) silences everything.
package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	warn  lipgloss.Style
	err   lipgloss.Style
	debug lipgloss.Style
}

var (
	mu      sync.RWMutex
	logger  *log.Logger
	verbose bool
	labels  styles
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Styling follows the destination's terminal capabilities.
func SetOutput(w io.Writer) {
	r := lipgloss.NewRenderer(w)

	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
	labels = styles{
		warn:  r.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		debug: r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Error logs an error message.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf(labels.err.Render("error:")+" "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf(labels.warn.Render("warning:")+" "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf(format, args...)
}

// Debug logs a debug message when verbose.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	logger.Printf(labels.debug.Render("debug:")+" "+format, args...)
}
