// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the guess CLI.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Palette. Cold tones mean "go higher", warm tones mean "go lower".
var (
	ColorColdBright = lipgloss.Color("#5DADE2") // too small
	ColorColdDeep   = lipgloss.Color("#2E86C1") // borders
	ColorHotBright  = lipgloss.Color("#F5B041") // too big
	ColorHotDeep    = lipgloss.Color("#CA6F1E")
	ColorWin        = lipgloss.Color("#58D68D")
	ColorError      = lipgloss.Color("#E74C3C")
	ColorMuted      = lipgloss.Color("#5D6D7E")
)

// Styles provides pre-configured lipgloss styles
var Styles = struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Cold      lipgloss.Style
	Hot       lipgloss.Style
	Win       lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	Box    lipgloss.Style
	WinBox lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorColdBright),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
	Cold:      lipgloss.NewStyle().Foreground(ColorColdBright),
	Hot:       lipgloss.NewStyle().Foreground(ColorHotBright),
	Win:       lipgloss.NewStyle().Bold(true).Foreground(ColorWin),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(ColorHotDeep),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorColdDeep).
		Padding(0, 1),
	WinBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWin).
		Padding(0, 1),
}

// Icon provides themed feedback icons
type Icon string

const (
	IconUp    Icon = "↑"
	IconDown  Icon = "↓"
	IconWin   Icon = "★"
	IconError Icon = "✗"
)

// Render returns the icon with appropriate styling
func (i Icon) Render() string {
	switch i {
	case IconUp:
		return Styles.Cold.Render(string(i))
	case IconDown:
		return Styles.Hot.Render(string(i))
	case IconWin:
		return Styles.Win.Render(string(i))
	case IconError:
		return Styles.Error.Render(string(i))
	default:
		return string(i)
	}
}

// Error writes a one-line diagnostic to w, styled for the current personality.
// cmd/guess uses it for the fatal message printed before exit.
//
// When w is a file that is not a terminal (stderr redirected or piped) the
// plain machine line is written whatever the personality.
func Error(w io.Writer, text string) {
	level := GetPersonality().Level
	if f, ok := w.(*os.File); ok && !isTerminal(f) {
		level = PersonalityMachine
	}

	switch level {
	case PersonalityMachine:
		fmt.Fprintf(w, "ERROR: %s\n", text)
	case PersonalityMinimal:
		fmt.Fprintf(w, "%s %s\n", IconError.Render(), text)
	default:
		fmt.Fprintf(w, "%s %s\n", IconError.Render(), Styles.Error.Render(text))
	}
}
