// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// configValidate checks the struct tags on GuessConfig.
var configValidate = validator.New()

type GuessConfig struct {
	// Range: the closed interval the secret is drawn from
	Range RangeConfig `yaml:"range"`

	// Logging: where diagnostics go; never the game stream
	Logging LoggingConfig `yaml:"logging"`

	// UX: how the game is drawn
	UX UXConfig `yaml:"ux"`
}

type RangeConfig struct {
	Min uint64 `yaml:"min"`                          // e.g. 1
	Max uint64 `yaml:"max" validate:"gtefield=Min"` // e.g. 100
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`

	// Dir sends logs to a JSON file in this directory instead of stderr.
	// e.g. ~/.guess/logs; empty keeps logs on stderr
	Dir string `yaml:"dir,omitempty"`

	// Telemetry writes the game span and guess_* metrics to stderr.
	// Always on at level debug.
	Telemetry bool `yaml:"telemetry"`
}

type UXConfig struct {
	// Personality can be "full", "standard", "minimal" or "machine".
	// Empty means auto-detect.
	Personality string `yaml:"personality,omitempty" validate:"omitempty,oneof=full standard minimal machine"`
	ShowHints   bool   `yaml:"show_hints"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() GuessConfig {
	return GuessConfig{
		Range: RangeConfig{
			Min: 1,
			Max: 100,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		UX: UXConfig{
			ShowHints: true,
		},
	}
}

// Validate reports the first invalid field, if any.
func (c GuessConfig) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}
