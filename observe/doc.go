// Package observe instruments bfs searches with Prometheus metrics,
// OpenTelemetry spans and slog records.
//
// Metrics (namespace "statespace"):
//
//	searches_total{outcome}      counter   searches by outcome (found, no_policy, cancelled, error)
//	states_discovered_total      counter   distinct states recorded across searches
//	states_expanded_total        counter   states whose successors were generated
//	search_duration_seconds      histogram wall time per search
//	policy_length                histogram actions per found policy
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	in := observe.Instruments{
//		Metrics: observe.NewMetrics(reg),
//		Tracer:  otel.Tracer("knightsmove"),
//		Logger:  slog.Default(),
//	}
//	res, err := observe.Search(ctx, start, goal, in, bfs.WithMaxDepth(20))
//
// Any zero field of Instruments is skipped.
package observe
