package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/statespace/observe"
)

// telemetry owns the logger, tracer provider and metric registry of one run.
type telemetry struct {
	logger   *slog.Logger
	provider *sdktrace.TracerProvider // nil unless tracing
	registry *prometheus.Registry     // nil unless dumping metrics
	in       observe.Instruments
}

func newTelemetry(stderr io.Writer, logger *slog.Logger, tracing, metrics bool) (*telemetry, error) {
	t := &telemetry{logger: logger}
	t.in.Logger = logger

	if tracing {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("trace exporter: %w", err)
		}
		t.provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		t.in.Tracer = t.provider.Tracer("github.com/katalvlaran/statespace/cmd/knightsmove")
	}
	if metrics {
		t.registry = prometheus.NewRegistry()
		t.in.Metrics = observe.NewMetrics(t.registry)
	}

	return t, nil
}

// close flushes spans and writes the metrics exposition to w.
func (t *telemetry) close(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if t.provider != nil {
		if err := t.provider.Shutdown(ctx); err != nil {
			return fmt.Errorf("trace shutdown: %w", err)
		}
	}
	if t.registry != nil {
		families, err := t.registry.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
	}

	return nil
}
