// Command partita runs the partition-and-assign pipeline for a batch of
// stories: clustered sentence CSVs in, partition CSVs and MIDI mapping JSON
// out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/soundlines/partita"
	"github.com/soundlines/partita/artifact"
	"github.com/soundlines/partita/internal/logging"
	"github.com/soundlines/partita/source"
	"github.com/soundlines/partita/store"
)

// batchConfig is the CLI configuration: which stories to process and where
// their datasets live. Path templates expand {story} per story.
type batchConfig struct {
	Stories []string       `yaml:"stories"`
	Paths   pathsConfig    `yaml:"paths"`
	Planner partita.Config `yaml:"planner"`
}

type pathsConfig struct {
	Stats          string `yaml:"stats"`
	Clustered      string `yaml:"clustered"`
	Interpolations string `yaml:"interpolations"`
	Output         string `yaml:"output"`
}

func loadBatchConfig(path string) (batchConfig, error) {
	cfg := batchConfig{Planner: partita.DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if len(cfg.Stories) == 0 {
		return cfg, fmt.Errorf("no stories configured")
	}
	for _, field := range []string{cfg.Paths.Stats, cfg.Paths.Clustered, cfg.Paths.Interpolations, cfg.Paths.Output} {
		if field == "" {
			return cfg, fmt.Errorf("paths.stats, paths.clustered, paths.interpolations, and paths.output are all required")
		}
	}

	return cfg, cfg.Planner.Validate()
}

func expand(template, story string) string {
	return strings.ReplaceAll(template, "{story}", story)
}

func main() {
	configPath := flag.String("config", "partita.yaml", "path to the batch configuration YAML")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	log := logging.NewSlogDefault()

	cfg, err := loadBatchConfig(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	failures := 0

	for _, story := range cfg.Stories {
		statsPath := expand(cfg.Paths.Stats, story)
		clusteredPath := expand(cfg.Paths.Clustered, story)

		if _, err := os.Stat(statsPath); err != nil {
			log.Warn("skipping story: statistics file not found", "story", story, "path", statsPath)
			continue
		}
		if _, err := os.Stat(clusteredPath); err != nil {
			log.Warn("skipping story: clustered file not found", "story", story, "path", clusteredPath)
			continue
		}

		src := source.NewCSV(statsPath, clusteredPath, nil)
		pool := artifact.NewDir(expand(cfg.Paths.Interpolations, story), "")
		st := store.NewFS(cfg.Paths.Output)

		planner, err := partita.New(&cfg.Planner, src, pool, st, partita.WithLogger(log))
		if err != nil {
			log.Error("planner setup failed", "story", story, "error", err)
			os.Exit(1)
		}

		result, err := planner.Run(ctx, story)
		if err != nil {
			// One bad story must not abort the batch.
			log.Error("story failed", "story", story, "error", err)
			failures++
			continue
		}

		for transition, diag := range result.Diagnostics {
			if !diag.OK() {
				log.Warn("diagnostic", "story", story, "transition", transition, "detail", diag.String())
			}
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}
