// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package game

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Labels for gamesTotal.
const (
	resultWon         = "won"
	resultInputFailed = "input_failed"
	resultCanceled    = "canceled"
)

// labelInvalid is the guessesTotal label for discarded lines.
const labelInvalid = "invalid"

// ==============================================================================
// Metrics
// ==============================================================================

var (
	// guessesTotal counts lines read, by outcome.
	// Labels: "too_small", "too_big", "win", "invalid"
	guessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guess_guesses_total",
		Help: "Total guesses by outcome",
	}, []string{"outcome"})

	// gamesTotal counts finished games by how they ended.
	// Labels: "won", "input_failed", "canceled"
	gamesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guess_games_total",
		Help: "Total games by result",
	}, []string{"result"})

	attemptsPerGame = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "guess_attempts_per_game",
		Help:    "Numeric guesses needed to win",
		Buckets: []float64{1, 2, 4, 7, 10, 15, 25, 50},
	})
)

// ==============================================================================
// OTel Tracer
// ==============================================================================

var (
	tracerOnce sync.Once
	gameTracer trace.Tracer
)

// getTracer returns the package tracer. Without a configured provider the
// global no-op tracer is used.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		gameTracer = otel.Tracer("github.com/lovey89/guides/internal/game")
	})
	return gameTracer
}
