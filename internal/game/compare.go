// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the three-way classification of a guess against the secret.
// Its values match cmp.Compare(guess, secret).
type Outcome int

const (
	OutcomeTooSmall Outcome = -1
	OutcomeWin      Outcome = 0
	OutcomeTooBig   Outcome = 1
)

// String returns the metric label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooSmall:
		return "too_small"
	case OutcomeWin:
		return "win"
	case OutcomeTooBig:
		return "too_big"
	default:
		return "unknown"
	}
}

// Compare classifies guess against secret.
func Compare(guess, secret uint64) Outcome {
	return Outcome(cmp.Compare(guess, secret))
}

// ParseGuess parses one input line as an unsigned decimal integer.
//
// Surrounding whitespace is ignored. Signs, decimals, empty lines and
// values above math.MaxUint64 are rejected with an error wrapping
// ErrInvalidGuess.
func ParseGuess(line string) (uint64, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidGuess, s, err)
	}
	return n, nil
}
