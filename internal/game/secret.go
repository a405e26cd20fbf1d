// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"math"
	"math/rand/v2"
)

// SecretSource draws the secret number for a game.
//
// Draw is only called with a Range that passed Validate.
type SecretSource interface {
	Draw(r Range) uint64
}

type randomSecretSource struct{}

// NewRandomSecretSource returns a source drawing uniformly from the range.
// Draws are not reproducible.
func NewRandomSecretSource() SecretSource {
	return randomSecretSource{}
}

func (randomSecretSource) Draw(r Range) uint64 {
	span := r.Max - r.Min
	if span == math.MaxUint64 {
		return rand.Uint64()
	}
	return r.Min + rand.Uint64N(span+1)
}

// FixedSecretSource always draws the same number. Used by tests and by
// the hidden --secret flag.
type FixedSecretSource uint64

func (f FixedSecretSource) Draw(Range) uint64 {
	return uint64(f)
}
