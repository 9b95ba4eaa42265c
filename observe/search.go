package observe

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/space"
)

// SpanName is the name of the span wrapping one search.
const SpanName = "bfs.search"

// Instruments selects where a search reports. Nil fields are skipped.
type Instruments struct {
	Metrics *Metrics
	Tracer  trace.Tracer
	Logger  *slog.Logger
}

// Search runs bfs.Search with ctx as its context, inside a span, and records
// metrics and a summary log line. opts are applied after the context option.
func Search(ctx context.Context, start space.State, goal space.Goal, in Instruments, opts ...bfs.Option) (*bfs.Result, error) {
	var span trace.Span
	if in.Tracer != nil {
		ctx, span = in.Tracer.Start(ctx, SpanName)
		defer span.End()
		if start != nil {
			span.SetAttributes(attribute.String("bfs.start", start.Key()))
		}
	}

	all := make([]bfs.Option, 0, len(opts)+2)
	all = append(all, bfs.WithContext(ctx))
	if in.Logger != nil {
		all = append(all, bfs.WithLogger(in.Logger))
	}
	all = append(all, opts...)

	began := time.Now()
	res, err := bfs.Search(start, goal, all...)
	elapsed := time.Since(began)

	if in.Metrics != nil {
		in.Metrics.Record(res, elapsed)
	}
	if span != nil {
		annotate(span, res, err)
	}
	if in.Logger != nil {
		logSummary(ctx, in.Logger, res, err, elapsed)
	}

	return res, err
}

// annotate copies the result onto span. It is a no-op for non-recording spans.
func annotate(span trace.Span, res *bfs.Result, err error) {
	if !span.IsRecording() {
		return
	}
	if res != nil {
		span.SetAttributes(
			attribute.String("bfs.outcome", res.Outcome.String()),
			attribute.Int("bfs.policy_length", res.Policy.Len()),
			attribute.Int("bfs.discovered", res.Stats.Discovered),
			attribute.Int("bfs.expanded", res.Stats.Expanded),
			attribute.Int("bfs.max_frontier", res.Stats.MaxFrontier),
			attribute.Bool("bfs.truncated", res.Truncated),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func logSummary(ctx context.Context, l *slog.Logger, res *bfs.Result, err error, elapsed time.Duration) {
	if res == nil {
		l.ErrorContext(ctx, "search failed", "error", err, "elapsed", elapsed)
		return
	}
	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
	}
	l.Log(ctx, level, "search complete",
		"outcome", res.Outcome.String(),
		"policy_len", res.Policy.Len(),
		"discovered", res.Stats.Discovered,
		"expanded", res.Stats.Expanded,
		"truncated", res.Truncated,
		"elapsed", elapsed,
		"error", err,
	)
}
