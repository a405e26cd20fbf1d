// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/lovey89/guides/cmd/guess/config"
	"github.com/lovey89/guides/internal/game"
	"github.com/lovey89/guides/pkg/logging"
	"github.com/lovey89/guides/pkg/ux"
)

var errEmptyPersonality = errors.New("value must not be empty")

// historySize bounds the interactive reader's up-arrow history.
const historySize = 50

// playOptions holds the root command's flag values.
type playOptions struct {
	configPath  string
	min         uint64
	max         uint64
	personality string
	logLevel    string
	logJSON     bool
	telemetry   bool
	reveal      bool
	secret      uint64
}

// newRootCmd builds the guess command over the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Long: `Guess draws a secret number and reads guesses from stdin, one per line,
answering "Too small!" or "Too big!" until you find it.

Lines that are not whole numbers are ignored. The game ends with exit
status 0 on a win and 1 if stdin closes first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts, in, out, errOut)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "",
		"Path to the config file (default ~/.guess/guess.yaml)")
	flags.Uint64Var(&opts.min, "min", 1, "Smallest possible secret")
	flags.Uint64Var(&opts.max, "max", 100, "Largest possible secret")
	flags.StringVar(&opts.personality, "personality", "",
		"Output style: full, standard, minimal or machine (env "+ux.PersonalityEnvVar+")")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Write logs to stderr as JSON")
	flags.BoolVar(&opts.telemetry, "telemetry", false,
		"Write the game's trace span and guess_* metrics to stderr (implied by --log-level debug)")
	flags.BoolVar(&opts.reveal, "reveal", false, "Print the secret before the first guess")
	flags.Uint64Var(&opts.secret, "secret", 0, "Use a fixed secret")
	_ = flags.MarkHidden("secret")

	return cmd
}

// runPlay resolves settings, then plays one game.
//
// Settings resolve as flag, then config file, then defaults. The
// personality additionally honours GUESS_PERSONALITY between flag and file.
// Flag and env personality are applied before the file is read so that a
// config error is already rendered in the requested style.
func runPlay(cmd *cobra.Command, opts *playOptions, in io.Reader, out, errOut io.Writer) error {
	flags := cmd.Flags()
	personalitySet := flags.Changed("personality")

	if err := initPersonality(personalitySet, opts.personality, config.DefaultConfig().UX); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if flags.Changed("min") {
		cfg.Range.Min = opts.min
	}
	if flags.Changed("max") {
		cfg.Range.Max = opts.max
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Logging.JSON = opts.logJSON
	}
	if flags.Changed("telemetry") {
		cfg.Logging.Telemetry = opts.telemetry
	}

	if err := initPersonality(personalitySet, opts.personality, cfg.UX); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: serviceName,
		JSON:    cfg.Logging.JSON,
		Quiet:   cfg.Logging.Dir != "",
		Output:  errOut,
	})
	defer logger.Close()

	runnerConfig := game.RunnerConfig{
		Range:  game.Range{Min: cfg.Range.Min, Max: cfg.Range.Max},
		UI:     ux.NewGameUI(out),
		Input:  game.NewInputReader(in, historySize),
		Logger: logger,
		Reveal: opts.reveal,
	}
	if flags.Changed("secret") {
		runnerConfig.Secret = game.FixedSecretSource(opts.secret)
	}

	if cfg.Logging.Telemetry || logger.Level() == logging.LevelDebug {
		tel, err := newTelemetry(errOut, prometheus.DefaultGatherer)
		if err != nil {
			return err
		}
		defer func() {
			if err := tel.Flush(context.Background()); err != nil {
				logger.Warn("telemetry flush failed", "error", err.Error())
			}
		}()
		runnerConfig.Tracer = tel.Tracer()
	}

	runner, err := game.NewGameRunner(runnerConfig)
	if err != nil {
		return err
	}

	if _, err := runner.Run(cmd.Context()); err != nil {
		return fmt.Errorf("game ended before a win: %w", err)
	}
	return nil
}

// initPersonality applies flag, then GUESS_PERSONALITY, then cfg.Personality,
// then terminal detection. Unknown values are errors.
func initPersonality(flagSet bool, flagValue string, cfg config.UXConfig) error {
	explicit := cfg.Personality
	if flagSet {
		if flagValue == "" {
			return fmt.Errorf("--personality: %w", errEmptyPersonality)
		}
		explicit = flagValue
	} else if os.Getenv(ux.PersonalityEnvVar) != "" {
		explicit = ""
	}
	if err := ux.InitPersonality(explicit); err != nil {
		return err
	}

	p := ux.GetPersonality()
	p.ShowHints = cfg.ShowHints
	ux.SetPersonality(p)
	return nil
}
