// Package ui provides terminal output utilities for the multiwall CLI.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// Symbols for different message types
const (
	SymbolSuccess = "✔"
	SymbolError   = "✖"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolBullet  = "•"
)

// Output wraps an io.Writer with UI utilities.
type Output struct {
	w       io.Writer
	noColor bool
	quiet   bool
	verbose bool
}

// NewOutput creates a new Output.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// DefaultOutput creates an Output for stdout.
func DefaultOutput() *Output {
	return NewOutput(os.Stdout)
}

// SetNoColor disables colors.
func (o *Output) SetNoColor(noColor bool) {
	o.noColor = noColor
}

// SetQuiet enables quiet mode (only errors).
func (o *Output) SetQuiet(quiet bool) {
	o.quiet = quiet
}

// SetVerbose enables verbose mode.
func (o *Output) SetVerbose(verbose bool) {
	o.verbose = verbose
}

// color applies color if enabled.
func (o *Output) color(code, text string) string {
	if o.noColor {
		return text
	}
	return code + text + Reset
}

// Success prints a success message.
func (o *Output) Success(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "%s %s\n", o.color(Green, SymbolSuccess), fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (o *Output) Error(format string, args ...interface{}) {
	fmt.Fprintf(o.w, "%s %s\n", o.color(Red, SymbolError), fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (o *Output) Warning(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "%s %s\n", o.color(Yellow, SymbolWarning), fmt.Sprintf(format, args...))
}

// Info prints an info message.
func (o *Output) Info(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "%s %s\n", o.color(Blue, SymbolInfo), fmt.Sprintf(format, args...))
}

// Print prints a plain message.
func (o *Output) Print(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, format+"\n", args...)
}

// Item prints an indented bullet item.
func (o *Output) Item(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "  %s %s\n", o.color(Cyan, SymbolBullet), fmt.Sprintf(format, args...))
}

// Detail prints a dimmed secondary line under an item.
func (o *Output) Detail(format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "    %s\n", o.color(Gray, fmt.Sprintf(format, args...)))
}

// Verbose prints only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.verbose || o.quiet {
		return
	}
	fmt.Fprintf(o.w, "%s\n", o.color(Gray, fmt.Sprintf(format, args...)))
}
