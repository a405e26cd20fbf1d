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
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "guess"

	// metricPrefix selects the game's families out of the default registry,
	// which also carries the Go runtime and process collectors.
	metricPrefix = "guess_"
)

// telemetry writes what one game recorded to w: the Run span through the
// OTel stdout exporter as the span ends, then the guess_* Prometheus
// families in text exposition format on Flush.
//
// Enabled with --telemetry or at --log-level debug. w is the diagnostics
// stream, never the game stream.
type telemetry struct {
	w        io.Writer
	provider *sdktrace.TracerProvider
	gatherer prometheus.Gatherer
}

func newTelemetry(w io.Writer, gatherer prometheus.Gatherer) (*telemetry, error) {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", serviceName),
	)

	// Spans are exported as they end.
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	return &telemetry{w: w, provider: provider, gatherer: gatherer}, nil
}

// Tracer returns the tracer handed to the game runner.
func (t *telemetry) Tracer() trace.Tracer {
	return t.provider.Tracer("github.com/lovey89/guides/cmd/guess")
}

// Flush shuts the provider down, then writes the metric families.
func (t *telemetry) Flush(ctx context.Context) error {
	var errs []error
	if err := t.provider.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
	}
	if err := writeMetrics(t.w, t.gatherer); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
