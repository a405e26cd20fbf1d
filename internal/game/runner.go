// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lovey89/guides/pkg/logging"
	"github.com/lovey89/guides/pkg/ux"
)

// defaultMaxHistory bounds the interactive reader's guess history.
const defaultMaxHistory = 50

// RunnerConfig holds what NewGameRunner needs. Only Range is required;
// nil collaborators get production defaults.
type RunnerConfig struct {
	Range  Range
	Secret SecretSource     // default: NewRandomSecretSource()
	UI     ux.GameUI        // default: ux.NewGameUI(os.Stdout)
	Input  InputReader      // default: NewInputReader(os.Stdin, ...)
	Logger *logging.Logger  // default: logging.Discard()
	Tracer trace.Tracer     // default: package tracer
	Reveal bool             // print the secret after the header
	Clock  func() time.Time // default: time.Now
}

// GameRunner plays one game.
//
// # Description
//
// The secret is drawn once in NewGameRunner and never changes. Run then
// loops until a guess matches or the input stream fails.
//
// # Thread Safety
//
// Not thread-safe, and not reusable after Run returns.
type GameRunner struct {
	id     string
	rng    Range
	secret uint64
	reveal bool

	ui     ux.GameUI
	input  InputReader
	logger *logging.Logger
	tracer trace.Tracer
	now    func() time.Time

	attempts int
	invalid  int
}

// NewGameRunner validates the range, draws the secret and fills defaults.
//
// Returns an error wrapping ErrInvalidRange if Min > Max or if the secret
// source produced a number outside the range.
func NewGameRunner(config RunnerConfig) (*GameRunner, error) {
	if err := config.Range.Validate(); err != nil {
		return nil, err
	}

	source := config.Secret
	if source == nil {
		source = NewRandomSecretSource()
	}
	secret := source.Draw(config.Range)
	if !config.Range.Contains(secret) {
		return nil, fmt.Errorf("%w: secret %d is outside %s", ErrInvalidRange, secret, config.Range)
	}

	r := &GameRunner{
		id:     uuid.New().String(),
		rng:    config.Range,
		secret: secret,
		reveal: config.Reveal,
		ui:     config.UI,
		input:  config.Input,
		logger: config.Logger,
		tracer: config.Tracer,
		now:    config.Clock,
	}
	if r.ui == nil {
		r.ui = ux.NewGameUI(os.Stdout)
	}
	if r.input == nil {
		r.input = NewInputReader(os.Stdin, defaultMaxHistory)
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	if r.tracer == nil {
		r.tracer = getTracer()
	}
	if r.now == nil {
		r.now = time.Now
	}
	r.logger = r.logger.With("game_id", r.id)
	return r, nil
}

// ID returns the game's UUID.
func (r *GameRunner) ID() string {
	return r.id
}

// Secret returns the secret number.
func (r *GameRunner) Secret() uint64 {
	return r.secret
}

// Run executes the guessing loop.
//
// # Description
//
// Each iteration prompts, reads one line and classifies it. Lines that are
// not unsigned integers are dropped without feedback. The first guess equal
// to the secret prints the win message and ends the loop.
//
// # Outputs
//
//   - *Result: set only on a win
//   - error: wraps ErrInputFailed (and the cause, e.g. io.EOF) when the input
//     stream fails, or ctx.Err() when ctx is cancelled between reads
//
// # Limitations
//
//   - A blocked ReadLine is not interrupted by ctx
func (r *GameRunner) Run(ctx context.Context) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "game.GameRunner.Run",
		trace.WithAttributes(
			attribute.String("game.id", r.id),
			attribute.String("game.range", r.rng.String()),
		),
	)
	defer span.End()

	start := r.now()
	r.logger.Info("game started", "range", r.rng.String())
	r.logger.Debug("secret drawn", "secret", r.secret)

	r.ui.Header(ux.HeaderConfig{Min: r.rng.Min, Max: r.rng.Max, GameID: r.id})
	if r.reveal {
		r.ui.Reveal(r.secret)
	}

	for {
		select {
		case <-ctx.Done():
			err := fmt.Errorf("game %s: %w", r.id, ctx.Err())
			r.fail(span, resultCanceled, err)
			return nil, err
		default:
		}

		r.prompt()
		line, err := r.input.ReadLine()
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInputFailed, err)
			r.fail(span, resultInputFailed, err)
			return nil, err
		}

		guess, err := ParseGuess(line)
		if err != nil {
			r.invalid++
			guessesTotal.WithLabelValues(labelInvalid).Inc()
			span.AddEvent("guess.discarded")
			r.logger.Debug("discarded input", "line", line)
			continue
		}

		r.attempts++
		r.ui.Echo(guess)

		outcome := Compare(guess, r.secret)
		guessesTotal.WithLabelValues(outcome.String()).Inc()
		span.AddEvent("guess", trace.WithAttributes(
			attribute.Int("guess.attempt", r.attempts),
			attribute.String("guess.outcome", outcome.String()),
		))
		r.logger.Debug("guess", "attempt", r.attempts, "outcome", outcome.String())

		switch outcome {
		case OutcomeTooSmall:
			r.ui.TooSmall()
		case OutcomeTooBig:
			r.ui.TooBig()
		case OutcomeWin:
			result := &Result{
				GameID:   r.id,
				Secret:   r.secret,
				Attempts: r.attempts,
				Invalid:  r.invalid,
				Duration: r.now().Sub(start),
			}
			r.ui.Win(&ux.GameStats{
				GameID:   result.GameID,
				Secret:   result.Secret,
				Attempts: result.Attempts,
				Invalid:  result.Invalid,
				Duration: result.Duration,
			})

			gamesTotal.WithLabelValues(resultWon).Inc()
			attemptsPerGame.Observe(float64(result.Attempts))
			span.SetAttributes(
				attribute.Int("game.attempts", result.Attempts),
				attribute.Int("game.invalid", result.Invalid),
			)
			span.SetStatus(codes.Ok, "")
			r.logger.Info("game won",
				"attempts", result.Attempts,
				"invalid", result.Invalid,
				"duration_ms", result.Duration.Milliseconds(),
			)
			return result, nil
		}
	}
}

// prompt hands the prompt to a self-prompting reader or writes it via the UI.
func (r *GameRunner) prompt() {
	if p, ok := r.input.(PromptingInputReader); ok {
		p.SetPrompt(r.ui.Prompt())
		return
	}
	r.ui.ShowPrompt()
}

func (r *GameRunner) fail(span trace.Span, result string, err error) {
	gamesTotal.WithLabelValues(result).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, result)
	r.logger.Error("game ended without a win",
		"result", result,
		"attempts", r.attempts,
		"error", err.Error(),
	)
}
