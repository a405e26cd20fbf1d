// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// =============================================================================
// terminalGameUI Tests
// =============================================================================

func TestNewGameUIWithWriter(t *testing.T) {
	var buf bytes.Buffer
	if ui := NewGameUIWithWriter(&buf, PersonalityMachine); ui == nil {
		t.Fatal("NewGameUIWithWriter returned nil")
	}
}

// -----------------------------------------------------------------------------
// Header Tests
// -----------------------------------------------------------------------------

func TestGameUI_Header_MachineMode(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMachine)

	ui.Header(HeaderConfig{Min: 1, Max: 100, GameID: "g-1"})

	if got := buf.String(); got != "GAME_START: range=1-100 game=g-1\n" {
		t.Errorf("unexpected header %q", got)
	}
}

func TestGameUI_Header_MachineMode_NoGameID(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMachine)

	ui.Header(HeaderConfig{Min: 5, Max: 9})

	if got := buf.String(); got != "GAME_START: range=5-9\n" {
		t.Errorf("unexpected header %q", got)
	}
}

func TestGameUI_Header_RichModes(t *testing.T) {
	for _, level := range []PersonalityLevel{PersonalityFull, PersonalityStandard} {
		t.Run(string(level), func(t *testing.T) {
			var buf bytes.Buffer
			ui := NewGameUIWithWriter(&buf, level)

			ui.Header(HeaderConfig{Min: 1, Max: 100})

			out := buf.String()
			if !strings.Contains(out, "Guess the number!") {
				t.Errorf("missing title: %q", out)
			}
			if !strings.Contains(out, "between 1 and 100") {
				t.Errorf("missing range hint: %q", out)
			}
		})
	}
}

func TestGameUI_Header_Minimal(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMinimal)

	ui.Header(HeaderConfig{Min: 1, Max: 100})

	if got := buf.String(); got != "Guess the number! (1-100)\n" {
		t.Errorf("unexpected header %q", got)
	}
}

// -----------------------------------------------------------------------------
// Prompt Tests
// -----------------------------------------------------------------------------

func TestGameUI_Prompt(t *testing.T) {
	var buf bytes.Buffer
	machine := NewGameUIWithWriter(&buf, PersonalityMachine)
	if got := machine.Prompt(); got != "Please input your guess.\n" {
		t.Errorf("machine Prompt() = %q", got)
	}

	full := NewGameUIWithWriter(&buf, PersonalityFull)
	if !strings.Contains(full.Prompt(), "guess> ") {
		t.Errorf("full Prompt() = %q", full.Prompt())
	}
}

func TestGameUI_ShowPrompt_WritesPrompt(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMachine)

	ui.ShowPrompt()
	ui.ShowPrompt()

	if got := buf.String(); got != "Please input your guess.\nPlease input your guess.\n" {
		t.Errorf("unexpected prompts %q", got)
	}
}

// -----------------------------------------------------------------------------
// Feedback Tests
// -----------------------------------------------------------------------------

func TestGameUI_Feedback_MachineMode(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMachine)

	ui.Echo(10)
	ui.TooSmall()
	ui.Echo(90)
	ui.TooBig()

	want := "You guessed: 10\nToo small!\nYou guessed: 90\nToo big!\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGameUI_Feedback_AllModesContainWording(t *testing.T) {
	levels := []PersonalityLevel{PersonalityFull, PersonalityStandard, PersonalityMinimal, PersonalityMachine}
	for _, level := range levels {
		t.Run(string(level), func(t *testing.T) {
			var buf bytes.Buffer
			ui := NewGameUIWithWriter(&buf, level)

			ui.Echo(42)
			ui.TooSmall()
			ui.TooBig()
			ui.Win(nil)

			out := buf.String()
			for _, want := range []string{"You guessed: 42", "Too small!", "Too big!", "You win!"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q: %q", want, out)
				}
			}
		})
	}
}

func TestGameUI_Feedback_MinimalIcons(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMinimal)

	ui.TooSmall()
	ui.TooBig()

	want := "↑ Too small!\n↓ Too big!\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// Win Tests
// -----------------------------------------------------------------------------

func TestGameUI_Win_MachineModeWithStats(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMachine)

	ui.Win(&GameStats{
		GameID:   "g-7",
		Secret:   50,
		Attempts: 3,
		Invalid:  2,
		Duration: 1500 * time.Millisecond,
	})

	want := "You win!\nGAME_END: game=g-7 secret=50 attempts=3 invalid=2 duration_ms=1500\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGameUI_Win_RichSummary(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityStandard)

	ui.Win(&GameStats{Secret: 1, Attempts: 1, Duration: 20 * time.Millisecond})

	out := buf.String()
	if !strings.Contains(out, "Found 1 in 1 guess") {
		t.Errorf("missing summary: %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("summary should not mention ignored lines: %q", out)
	}
}

func TestGameUI_Win_MinimalWithStats(t *testing.T) {
	var buf bytes.Buffer
	ui := NewGameUIWithWriter(&buf, PersonalityMinimal)

	ui.Win(&GameStats{Attempts: 4})

	if got := buf.String(); got != "★ You win! (4 guesses)\n" {
		t.Errorf("unexpected win line %q", got)
	}
}

// -----------------------------------------------------------------------------
// Reveal Tests
// -----------------------------------------------------------------------------

func TestGameUI_Reveal(t *testing.T) {
	var buf bytes.Buffer
	NewGameUIWithWriter(&buf, PersonalityMachine).Reveal(77)
	if got := buf.String(); got != "SECRET: 77\n" {
		t.Errorf("machine Reveal = %q", got)
	}

	buf.Reset()
	NewGameUIWithWriter(&buf, PersonalityFull).Reveal(77)
	if !strings.Contains(buf.String(), "The secret number is: 77") {
		t.Errorf("full Reveal = %q", buf.String())
	}
}

func TestNewGameUI_UsesCurrentPersonality(t *testing.T) {
	orig := GetPersonality()
	defer SetPersonality(orig)
	SetPersonality(Personality{Level: PersonalityStandard, ShowHints: false})

	var buf bytes.Buffer
	NewGameUI(&buf).Header(HeaderConfig{Min: 1, Max: 100})

	out := buf.String()
	if !strings.Contains(out, "Guess the number!") {
		t.Errorf("missing title: %q", out)
	}
	if strings.Contains(out, "between") {
		t.Errorf("hints disabled but range hint shown: %q", out)
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{350 * time.Millisecond, "350ms"},
		{4200 * time.Millisecond, "4.2s"},
		{2 * time.Minute, "2m"},
		{3*time.Minute + 5*time.Second, "3m 5s"},
		{time.Hour + 2*time.Minute, "1h 2m"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestGuessCount(t *testing.T) {
	if got := guessCount(1); got != "1 guess" {
		t.Errorf("guessCount(1) = %q", got)
	}
	if got := guessCount(7); got != "7 guesses" {
		t.Errorf("guessCount(7) = %q", got)
	}
}
