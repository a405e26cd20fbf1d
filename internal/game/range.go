// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import "fmt"

// Range is a closed interval [Min, Max] of candidate secrets.
type Range struct {
	Min uint64
	Max uint64
}

// DefaultRange is [1, 100].
var DefaultRange = Range{Min: 1, Max: 100}

// Validate returns an error wrapping ErrInvalidRange when Min > Max.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether n lies in the closed interval.
func (r Range) Contains(n uint64) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
