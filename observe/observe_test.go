package observe_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/knights"
	"github.com/katalvlaran/statespace/observe"
	"github.com/katalvlaran/statespace/space"
)

func loc(r, c int) knights.Location { return knights.Location{Row: r, Col: c} }

// newTracer returns a tracer backed by an in-memory exporter.
func newTracer(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter, tp
}

func attrs(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestSearch_Found(t *testing.T) {
	reg := prometheus.NewRegistry()
	exporter, tp := newTracer(t)
	var logs bytes.Buffer
	in := observe.Instruments{
		Metrics: observe.NewMetrics(reg),
		Tracer:  tp.Tracer("test"),
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
	}

	start := knights.MustNew(loc(0, 0))
	res, err := observe.Search(context.Background(), start, knights.Occupies(loc(7, 7)), in)
	require.NoError(t, err)
	require.True(t, res.Solved())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, observe.SpanName, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	a := attrs(spans[0].Attributes)
	assert.Equal(t, "found", a["bfs.outcome"].AsString())
	assert.Equal(t, int64(6), a["bfs.policy_length"].AsInt64())
	assert.Equal(t, start.Key(), a["bfs.start"].AsString())

	n, err := testutil.GatherAndCount(reg, "statespace_searches_total", "statespace_policy_length")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Contains(t, logs.String(), "search complete")
	assert.Contains(t, logs.String(), "outcome=found")
}

func TestSearch_NoPolicyAndCancelled(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observe.NewMetrics(reg)
	exporter, tp := newTracer(t)
	in := observe.Instruments{Metrics: m, Tracer: tp.Tracer("test")}

	two := knights.MustNew(loc(0, 0), loc(7, 7))
	res, err := observe.Search(context.Background(), two, space.EqualTo(knights.MustNew(loc(1, 1))), in)
	require.NoError(t, err)
	assert.Equal(t, bfs.NoPolicy, res.Outcome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = observe.Search(ctx, two, space.EqualTo(knights.MustNew(loc(1, 1))), in)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, bfs.Cancelled, res.Outcome)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[1].Status.Code)

	expected := `
# HELP statespace_searches_total Searches run, by outcome.
# TYPE statespace_searches_total counter
statespace_searches_total{outcome="cancelled"} 1
statespace_searches_total{outcome="no_policy"} 1
# HELP statespace_states_discovered_total Distinct states recorded by searches.
# TYPE statespace_states_discovered_total counter
statespace_states_discovered_total 2017
`
	// 2016 two-knight boards, plus the start of the cancelled search
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"statespace_searches_total", "statespace_states_discovered_total"))
}

func TestMetrics_RecordError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observe.NewMetrics(reg)
	m.Record(nil, time.Millisecond)

	expected := `
# HELP statespace_searches_total Searches run, by outcome.
# TYPE statespace_searches_total counter
statespace_searches_total{outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "statespace_searches_total"))
}

func TestSearch_NoInstruments(t *testing.T) {
	res, err := observe.Search(context.Background(), knights.MustNew(loc(4, 4)),
		space.EqualTo(knights.MustNew(loc(3, 6))), observe.Instruments{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Policy.Len())

	_, err = observe.Search(context.Background(), nil, nil, observe.Instruments{})
	assert.ErrorIs(t, err, bfs.ErrNilStart)
}
