// Package telemetry sets up OpenTelemetry tracing for the dashboard.
package telemetry

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

func noop(context.Context) error { return nil }

// Setup installs a global tracer provider exporting to the OTLP/HTTP endpoint
// in conf ("otlpEndpoint"). Without an endpoint nothing is registered and the
// returned Shutdown does nothing.
func Setup(ctx context.Context, conf *viper.Viper) (Shutdown, error) {
	endpoint := conf.GetString("otlpEndpoint")
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, errors.Wrap(err, "telemetry: creating exporter")
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(conf.GetString("appName")),
			semconv.ServiceVersion(conf.GetString("build")),
			semconv.DeploymentEnvironment(conf.GetString("env")),
		),
	)
	if err != nil {
		return noop, errors.Wrap(err, "telemetry: building resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
