// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_ThreeWay verifies every guess in [1,100] against every secret.
func TestCompare_ThreeWay(t *testing.T) {
	for secret := uint64(1); secret <= 100; secret++ {
		for guess := uint64(1); guess <= 100; guess++ {
			got := Compare(guess, secret)
			switch {
			case guess < secret:
				require.Equal(t, OutcomeTooSmall, got, "guess=%d secret=%d", guess, secret)
			case guess > secret:
				require.Equal(t, OutcomeTooBig, got, "guess=%d secret=%d", guess, secret)
			default:
				require.Equal(t, OutcomeWin, got, "guess=%d secret=%d", guess, secret)
			}
		}
	}
}

func TestCompare_Extremes(t *testing.T) {
	assert.Equal(t, OutcomeTooSmall, Compare(0, math.MaxUint64))
	assert.Equal(t, OutcomeTooBig, Compare(math.MaxUint64, 0))
	assert.Equal(t, OutcomeWin, Compare(math.MaxUint64, math.MaxUint64))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "too_small", OutcomeTooSmall.String())
	assert.Equal(t, "too_big", OutcomeTooBig.String())
	assert.Equal(t, "win", OutcomeWin.String())
	assert.Equal(t, "unknown", Outcome(7).String())
}

func TestParseGuess_Valid(t *testing.T) {
	tests := []struct {
		line string
		want uint64
	}{
		{"42", 42},
		{" 42 ", 42},
		{"42\n", 42},
		{"\t7\r\n", 7},
		{"0", 0},
		{"007", 7},
		{strconv.FormatUint(math.MaxUint64, 10), math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseGuess(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGuess_Invalid(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"abc",
		"x",
		"4.2",
		"-1",
		"+1",
		"1 2",
		"0x10",
		"1_000",
		"18446744073709551616", // MaxUint64 + 1
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := ParseGuess(line)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidGuess)
		})
	}
}
