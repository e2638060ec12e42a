package partita

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/soundlines/partita/assign"
	"github.com/soundlines/partita/internal/logger"
	"github.com/soundlines/partita/internal/metrics"
	"github.com/soundlines/partita/split"
)

// Planner runs the partition-and-assign pipeline for whole stories.
//
// For each configured transition, the Planner reads the matching cluster's
// sentences, sizes the partition count from the transition's artifact pool
// (len(pool) / assign.PerPartition), computes the min-max partitioning,
// distributes the artifacts, and persists partitions, summary, and mapping.
//
// Transitions are independent pure computations and are processed
// concurrently up to Config.Concurrency; results are reassembled in
// transition order, so output is deterministic regardless of scheduling.
type Planner struct {
	cfg     *Config
	source  ItemSource
	pool    ArtifactPool
	store   Store
	logger  Logger
	metrics MetricsCollector
}

// Result is the in-memory outcome of one story run, mirroring what was
// persisted through the Store.
type Result struct {
	// Story is the processed story name.
	Story string

	// Sets maps transition to its computed partition set. Skipped
	// transitions (no artifacts, no sentences, no matching cluster) are
	// absent.
	Sets map[string]PartitionSet

	// Mapping maps transition to its artifact assignment.
	Mapping map[string]Assignment

	// Summary is the flattened per-partition summary, in transition order.
	Summary []SummaryRow

	// Diagnostics collects the non-fatal conditions reported while
	// assigning, keyed by transition.
	Diagnostics map[string]Diagnostic
}

// transitionOutcome is the per-transition worker result, collected
// concurrently and assembled in transition order afterwards.
type transitionOutcome struct {
	set        PartitionSet
	assignment Assignment
	diag       Diagnostic
	cluster    Cluster
	skipped    string
	err        error
}

// New creates a Planner.
//
// Parameters:
//   - cfg: Planner configuration (DefaultConfig() used when nil)
//   - source: Item source supplying clusters and sentences
//   - pool: Artifact pool supplying per-transition file lists
//   - store: Persistence for partitions, summary, and mapping
//   - opts: Optional logger and metrics
//
// Returns:
//   - *Planner: Initialized planner
//   - error: Validation error (nil dependencies, invalid config)
func New(cfg *Config, source ItemSource, pool ArtifactPool, store Store, opts ...Option) (*Planner, error) {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrItemSourceRequired
	}
	if pool == nil {
		return nil, ErrArtifactPoolRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Planner{
		cfg:     cfg,
		source:  source,
		pool:    pool,
		store:   store,
		logger:  options.logger,
		metrics: options.metrics,
	}, nil
}

// Run processes one story: every configured transition, then the persisted
// summary and mapping.
//
// Per-transition diagnostics (empty or mismatched artifact pools, missing
// sentences) are logged and recorded but never abort the run. I/O failures
// and an invalid partition count do abort it.
//
// Parameters:
//   - ctx: Context passed to collaborators
//   - story: Story name (used for output paths and logging)
//
// Returns:
//   - *Result: Computed partitions, mapping, and summary
//   - error: First collaborator or optimizer failure, in transition order
func (p *Planner) Run(ctx context.Context, story string) (*Result, error) {
	clusters, err := p.source.ListClusters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clusters for %s: %w", story, err)
	}

	p.logger.Info("processing story",
		"story", story,
		"clusters", len(clusters),
		"transitions", len(p.cfg.Transitions),
	)

	outcomes := xsync.NewMap[string, *transitionOutcome]()
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, transition := range p.cfg.Transitions {
		if i >= len(clusters) {
			p.logger.Warn("no cluster for transition, skipping",
				"story", story, "transition", transition)
			break
		}

		wg.Add(1)
		go func(transition string, cluster Cluster) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcomes.Store(transition, p.processTransition(ctx, story, transition, cluster))
		}(transition, clusters[i])
	}
	wg.Wait()

	result := &Result{
		Story:       story,
		Sets:        make(map[string]PartitionSet),
		Mapping:     make(map[string]Assignment),
		Diagnostics: make(map[string]Diagnostic),
	}

	var errs []error
	for _, transition := range p.cfg.Transitions {
		outcome, ok := outcomes.Load(transition)
		if !ok {
			continue
		}
		if outcome.err != nil {
			errs = append(errs, fmt.Errorf("transition %s: %w", transition, outcome.err))
			continue
		}
		if outcome.skipped != "" {
			p.logger.Warn("transition skipped",
				"story", story, "transition", transition, "reason", outcome.skipped)
			continue
		}

		result.Sets[transition] = outcome.set
		result.Mapping[transition] = outcome.assignment
		result.Diagnostics[transition] = outcome.diag
		for _, partition := range outcome.set {
			result.Summary = append(result.Summary, SummaryRow{
				Cluster:    outcome.cluster.ID,
				Transition: transition,
				Partition:  partition.Index,
				NumItems:   len(partition.Items),
				Weight:     partition.TotalWeight,
				ItemIDs:    partition.IDKey(),
			})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if len(result.Summary) > 0 {
		if err := p.store.SaveSummary(ctx, story, result.Summary); err != nil {
			return nil, fmt.Errorf("save summary for %s: %w", story, err)
		}
	}
	if len(result.Mapping) > 0 {
		if err := p.store.SaveMapping(ctx, story, result.Mapping); err != nil {
			return nil, fmt.Errorf("save mapping for %s: %w", story, err)
		}
	}

	p.logger.Info("story complete",
		"story", story,
		"transitions", len(result.Mapping),
		"partitions", len(result.Summary),
	)

	return result, nil
}

// processTransition runs the partition-and-assign pipeline for a single
// transition. Returns a skipped outcome rather than an error for the
// conditions the batch policy tolerates.
func (p *Planner) processTransition(ctx context.Context, story, transition string, cluster Cluster) *transitionOutcome {
	outcome := &transitionOutcome{cluster: cluster}

	artifacts, err := p.pool.ListArtifacts(ctx, transition)
	if err != nil {
		outcome.err = err
		return outcome
	}

	k := len(artifacts) / assign.PerPartition
	if k <= 0 {
		outcome.skipped = "no artifacts"
		p.metrics.RecordDiagnostic(DiagEmptyPool.String())
		return outcome
	}

	items, err := p.source.ListItems(ctx, cluster)
	if err != nil {
		outcome.err = err
		return outcome
	}
	if len(items) == 0 {
		outcome.skipped = "no sentences in cluster range"
		return outcome
	}

	start := time.Now()
	set, err := split.MinMax(items, k)
	if err != nil {
		outcome.err = err
		return outcome
	}
	p.metrics.RecordSplitDuration(time.Since(start).Seconds(), len(items))
	p.metrics.RecordPartitionCount(len(set))

	assignment, diag := assign.Artifacts(set, artifacts)
	p.metrics.RecordArtifactsAssigned(assignment.ArtifactCount())
	if !diag.OK() {
		p.metrics.RecordDiagnostic(diag.Kind.String())
		p.logger.Warn("assignment diagnostic",
			"story", story,
			"transition", transition,
			"diagnostic", diag.String(),
		)
	}

	if err := p.store.SavePartitions(ctx, story, transition, cluster, set); err != nil {
		outcome.err = err
		return outcome
	}

	p.logger.Debug("transition processed",
		"story", story,
		"transition", transition,
		"partitions", len(set),
		"max_weight", set.MaxWeight(),
		"artifacts", assignment.ArtifactCount(),
		"fingerprint", set.Fingerprint(),
	)

	outcome.set = set
	outcome.assignment = assignment
	outcome.diag = diag

	return outcome
}
