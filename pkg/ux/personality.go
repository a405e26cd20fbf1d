// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// PersonalityEnvVar overrides the personality level when no flag is given.
const PersonalityEnvVar = "GUESS_PERSONALITY"

// PersonalityLevel defines the verbosity and richness of CLI output
type PersonalityLevel string

const (
	// PersonalityFull enables boxes, icons, colors and hints
	PersonalityFull PersonalityLevel = "full"

	// PersonalityStandard enables colors and icons without boxes
	PersonalityStandard PersonalityLevel = "standard"

	// PersonalityMinimal uses icons and plain text
	PersonalityMinimal PersonalityLevel = "minimal"

	// PersonalityMachine outputs plain lines suitable for scripting
	PersonalityMachine PersonalityLevel = "machine"
)

// Personality holds the current UX personality configuration
type Personality struct {
	// Level controls overall verbosity (full, standard, minimal, machine)
	Level PersonalityLevel

	// ShowHints prints the valid range under the header
	ShowHints bool
}

var (
	currentPersonality = DefaultPersonality()
	personalityMu      sync.RWMutex
)

// GetPersonality returns the current personality settings
func GetPersonality() Personality {
	personalityMu.RLock()
	defer personalityMu.RUnlock()
	return currentPersonality
}

// SetPersonality updates the current personality settings
func SetPersonality(p Personality) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality = p
}

// SetPersonalityLevel updates just the personality level
func SetPersonalityLevel(level PersonalityLevel) {
	personalityMu.Lock()
	defer personalityMu.Unlock()
	currentPersonality.Level = level
}

// ParsePersonalityLevel converts a flag, env or config value to a
// PersonalityLevel. Matching is case-insensitive and accepts short forms
// ("std", "min", "q"). Unknown values return an error and PersonalityStandard.
func ParsePersonalityLevel(s string) (PersonalityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "f":
		return PersonalityFull, nil
	case "standard", "std", "s":
		return PersonalityStandard, nil
	case "minimal", "min", "m":
		return PersonalityMinimal, nil
	case "machine", "quiet", "q":
		return PersonalityMachine, nil
	default:
		return PersonalityStandard, fmt.Errorf("unknown personality %q (want full, standard, minimal or machine)", s)
	}
}

// InitPersonality picks the level from, in order: the explicit value,
// GUESS_PERSONALITY, and whether stdout is a terminal.
//
// An unknown explicit or env value is an error and leaves the level unchanged.
func InitPersonality(explicit string) error {
	if explicit != "" {
		return setParsedLevel(explicit)
	}
	if envLevel := os.Getenv(PersonalityEnvVar); envLevel != "" {
		if err := setParsedLevel(envLevel); err != nil {
			return fmt.Errorf("%s: %w", PersonalityEnvVar, err)
		}
		return nil
	}
	if !isTerminal(os.Stdout) {
		SetPersonalityLevel(PersonalityMachine)
		return nil
	}
	SetPersonalityLevel(PersonalityFull)
	return nil
}

func setParsedLevel(s string) error {
	level, err := ParsePersonalityLevel(s)
	if err != nil {
		return err
	}
	SetPersonalityLevel(level)
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DefaultPersonality returns the default personality settings
func DefaultPersonality() Personality {
	return Personality{
		Level:     PersonalityFull,
		ShowHints: true,
	}
}
