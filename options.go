package partita

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (slog-compatible key-value style)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlog(slog.New(handler))
//	planner, err := partita.New(&cfg, src, pool, st, partita.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "partita")
//	planner, err := partita.New(&cfg, src, pool, st, partita.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}
