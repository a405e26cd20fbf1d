// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package game implements the number guessing loop.
//
// A GameRunner draws a secret from a closed Range, then repeatedly prompts,
// reads one line, and classifies it:
//
//	prompt → ReadLine ─┬─ read error ──────────→ return ErrInputFailed
//	   ↑               ├─ not a number ─────────→ (silent) ─┐
//	   │               └─ number → Compare ─┬─ too small ───┤
//	   │                                    ├─ too big ─────┤
//	   └────────────────────────────────────┼───────────────┘
//	                                        └─ equal → You win! → return Result
//
// The loop is single-threaded. The only blocking point is ReadLine.
package game

import (
	"errors"
	"time"
)

var (
	// ErrInputFailed marks a failure of the input stream, including EOF.
	// It ends the game; there is no retry.
	ErrInputFailed = errors.New("input failed")

	// ErrInvalidGuess marks a line that is not an unsigned decimal integer.
	// The loop discards such lines; it never escapes Run.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrInvalidRange marks a Range with Min > Max, or a fixed secret
	// outside the Range.
	ErrInvalidRange = errors.New("invalid range")
)

// Result describes a won game.
type Result struct {
	GameID   string
	Secret   uint64
	Attempts int // numeric guesses, including the winning one
	Invalid  int // discarded lines
	Duration time.Duration
}
