// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"io"
	"time"
)

// HeaderConfig contains what the game header shows.
type HeaderConfig struct {
	Min    uint64
	Max    uint64
	GameID string // may be empty
}

// GameStats summarises a finished game for the win message.
type GameStats struct {
	GameID   string
	Secret   uint64
	Attempts int           // numeric guesses, including the winning one
	Invalid  int           // lines discarded because they were not numbers
	Duration time.Duration // from first prompt to win
}

// GameUI renders everything the guessing loop shows the player.
//
// # Description
//
// GameUI owns the display stream. The loop never writes to stdout itself;
// it calls one method per event so that every personality level, including
// the line-oriented machine mode, is handled in one place.
//
// # Thread Safety
//
// Not thread-safe. The loop is single-threaded.
type GameUI interface {
	// Header displays the title and, if hints are enabled, the range.
	Header(config HeaderConfig)

	// Prompt returns the prompt string without writing it.
	// Used by readers that draw their own prompt.
	Prompt() string

	// ShowPrompt writes the prompt to the display stream.
	ShowPrompt()

	// Echo confirms a guess that parsed successfully.
	Echo(guess uint64)

	// TooSmall reports a guess below the secret.
	TooSmall()

	// TooBig reports a guess above the secret.
	TooBig()

	// Win reports the terminal match. stats may be nil.
	Win(stats *GameStats)

	// Reveal prints the secret (debug aid behind --reveal).
	Reveal(secret uint64)
}

// terminalGameUI implements GameUI for terminal output
type terminalGameUI struct {
	writer      io.Writer
	personality PersonalityLevel
	showHints   bool
}

// write ignores errors; there is no recovery for a broken display stream.
func (u *terminalGameUI) write(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(u.writer, format, args...); err != nil {
		return
	}
}

func (u *terminalGameUI) writeln(args ...interface{}) {
	if _, err := fmt.Fprintln(u.writer, args...); err != nil {
		return
	}
}

// NewGameUI creates a GameUI on w using the current personality
func NewGameUI(w io.Writer) GameUI {
	p := GetPersonality()
	return &terminalGameUI{
		writer:      w,
		personality: p.Level,
		showHints:   p.ShowHints,
	}
}

// NewGameUIWithWriter creates a GameUI with a custom writer (for testing)
func NewGameUIWithWriter(w io.Writer, personality PersonalityLevel) GameUI {
	return &terminalGameUI{
		writer:      w,
		personality: personality,
		showHints:   true,
	}
}

func (u *terminalGameUI) Header(config HeaderConfig) {
	switch u.personality {
	case PersonalityMachine:
		if config.GameID != "" {
			u.write("GAME_START: range=%d-%d game=%s\n", config.Min, config.Max, config.GameID)
			return
		}
		u.write("GAME_START: range=%d-%d\n", config.Min, config.Max)
	case PersonalityMinimal:
		u.write("Guess the number! (%d-%d)\n", config.Min, config.Max)
	case PersonalityStandard:
		u.writeln(Styles.Title.Render("Guess the number!"))
		if u.showHints {
			u.writeln(Styles.Muted.Render(rangeHint(config)))
		}
	default:
		body := Styles.Title.Render("Guess the number!")
		if u.showHints {
			body += "\n" + Styles.Muted.Render(rangeHint(config))
		}
		u.writeln(Styles.Box.Render(body))
	}
}

func rangeHint(config HeaderConfig) string {
	return fmt.Sprintf("Pick a whole number between %d and %d.", config.Min, config.Max)
}

func (u *terminalGameUI) Prompt() string {
	if u.personality == PersonalityMachine {
		return "Please input your guess.\n"
	}
	return Styles.Highlight.Render("guess> ")
}

func (u *terminalGameUI) ShowPrompt() {
	u.write("%s", u.Prompt())
}

func (u *terminalGameUI) Echo(guess uint64) {
	if u.personality == PersonalityMachine || u.personality == PersonalityMinimal {
		u.write("You guessed: %d\n", guess)
		return
	}
	u.write("%s %s\n", Styles.Muted.Render("│"), Styles.Muted.Render(fmt.Sprintf("You guessed: %d", guess)))
}

func (u *terminalGameUI) TooSmall() {
	u.feedback(IconUp, Styles.Cold.Render("Too small!"), "Too small!")
}

func (u *terminalGameUI) TooBig() {
	u.feedback(IconDown, Styles.Hot.Render("Too big!"), "Too big!")
}

func (u *terminalGameUI) feedback(icon Icon, styled, plain string) {
	switch u.personality {
	case PersonalityMachine:
		u.writeln(plain)
	case PersonalityMinimal:
		u.write("%s %s\n", icon, plain)
	default:
		u.write("%s %s\n", icon.Render(), styled)
	}
}

func (u *terminalGameUI) Win(stats *GameStats) {
	switch u.personality {
	case PersonalityMachine:
		u.writeln("You win!")
		if stats != nil {
			u.write("GAME_END: game=%s secret=%d attempts=%d invalid=%d duration_ms=%d\n",
				stats.GameID, stats.Secret, stats.Attempts, stats.Invalid, stats.Duration.Milliseconds())
		}
	case PersonalityMinimal:
		if stats != nil {
			u.write("%s You win! (%s)\n", IconWin, guessCount(stats.Attempts))
			return
		}
		u.write("%s You win!\n", IconWin)
	case PersonalityStandard:
		u.write("%s %s\n", IconWin.Render(), Styles.Win.Render("You win!"))
		if stats != nil {
			u.writeln(Styles.Muted.Render(summary(stats)))
		}
	default:
		body := IconWin.Render() + " " + Styles.Win.Render("You win!")
		if stats != nil {
			body += "\n" + Styles.Muted.Render(summary(stats))
		}
		u.writeln(Styles.WinBox.Render(body))
	}
}

func summary(stats *GameStats) string {
	s := fmt.Sprintf("Found %d in %s", stats.Secret, guessCount(stats.Attempts))
	if stats.Invalid > 0 {
		s += fmt.Sprintf(" (%d ignored)", stats.Invalid)
	}
	return s + " · " + formatDuration(stats.Duration)
}

func guessCount(n int) string {
	if n == 1 {
		return "1 guess"
	}
	return fmt.Sprintf("%d guesses", n)
}

func (u *terminalGameUI) Reveal(secret uint64) {
	if u.personality == PersonalityMachine {
		u.write("SECRET: %d\n", secret)
		return
	}
	u.writeln(Styles.Muted.Render(fmt.Sprintf("The secret number is: %d", secret)))
}

// formatDuration renders d as "350ms", "4.2s", "3m 5s" or "1h 2m".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
