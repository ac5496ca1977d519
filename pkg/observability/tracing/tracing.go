/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tracing

import (
	"context"
	"fmt"
	"os"

	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("tracing")

// SpanExporterType specifies the type of span exporter used by tracer provider.
type SpanExporterType = string

const (
	None   SpanExporterType = ""
	Stdout SpanExporterType = "STDOUT"
)

const tracerName = "https://github.com/trustbloc/biowallet"

// Provider is an initialized tracer provider.
type Provider struct {
	trace.TracerProvider

	shutdown func()
}

// Tracer returns the wallet tracer.
func (p *Provider) Tracer() trace.Tracer {
	return p.TracerProvider.Tracer(tracerName)
}

// Shutdown flushes pending spans. It should be called before the process terminates.
func (p *Provider) Shutdown() {
	p.shutdown()
}

// IsExportedSupported reports whether exporter names a supported span exporter.
func IsExportedSupported(exporter SpanExporterType) bool {
	return exporter == None || exporter == Stdout
}

// Initialize creates and registers globally a new tracer provider with specified span exporter. The
// None exporter yields a no-op provider that is not registered.
func Initialize(exporter SpanExporterType, serviceName string, opts ...stdouttrace.Option) (*Provider, error) {
	if exporter == None {
		return &Provider{
			TracerProvider: trace.NewNoopTracerProvider(),
			shutdown:       func() {},
		}, nil
	}

	var spanExporter tracesdk.SpanExporter

	switch exporter {
	case Stdout:
		var err error

		spanExporter, err = stdouttrace.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", exporter)
	}

	tracerProvider := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(spanExporter),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
			semconv.ProcessPIDKey.Int(os.Getpid()),
		)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &Provider{
		TracerProvider: tracerProvider,
		shutdown: func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Warn("Error shutting down tracer provider", log.WithError(err))
			}
		},
	}, nil
}
