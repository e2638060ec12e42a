// Package partita provides balanced contiguous partitioning of story
// sentences and deterministic assignment of generated MIDI artifacts to the
// resulting partitions.
//
// Partita is the middle stage of a story-to-music pipeline: upstream stages
// cluster story sentences and generate MIDI interpolations per cluster
// transition; downstream stages render and display the mapped content.
// Partita splits each cluster's sentences into word-balanced contiguous
// partitions (an exact min-max dynamic program, see the split package) and
// distributes the transition's interpolation files across them (two per
// partition, surplus to the heaviest; see the assign package).
//
// # Quick Start
//
//	cfg := partita.DefaultConfig()
//
//	src := source.NewCSV(statsPath, clusteredPath, nil)
//	pool := artifact.NewDir(interpolationsDir, "")
//	st := store.NewFS(outputDir)
//
//	planner, err := partita.New(&cfg, src, pool, st)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := planner.Run(ctx, "carnival")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary)
//
// # Key Behaviors
//
//   - Exact balancing: partition boundaries minimize the largest partition's
//     word count, never a greedy approximation
//   - Deterministic output: identical inputs always produce byte-identical
//     partitions and mappings (ties resolve to the earliest split point and
//     the first heaviest partition)
//   - Graceful batch degradation: malformed artifact pools are logged as
//     diagnostics and processing continues; only an invalid partition count
//     aborts a story
//
// # Advanced Usage
//
// Custom logger, metrics, and concurrency:
//
//	planner, err := partita.New(&cfg, src, pool, st,
//	    partita.WithLogger(logging.NewSlogDefault()),
//	    partita.WithMetrics(metrics.NewPrometheus(nil, "")),
//	)
//
// See the examples/ directory for a complete working pipeline.
package partita
