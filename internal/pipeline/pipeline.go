// Package pipeline runs the full cleaning and analysis pass over the
// Apple Store and Google Play exports and assembles the run report.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Yannari/app-market-analysis/internal/clean"
	"github.com/Yannari/app-market-analysis/internal/dataset"
	"github.com/Yannari/app-market-analysis/internal/stats"
)

// Options configures a pipeline run.
type Options struct {
	ApplePath  string
	GooglePath string
	// NonASCIILimit is the English-heuristic allowance; 0 or negative
	// falls back to clean.DefaultNonASCIILimit.
	NonASCIILimit int
	// TopN limits each report table to its first N entries; 0 keeps all.
	TopN int
	// Reporter receives removed-row diagnostics; nil means stderr.
	Reporter clean.Reporter
}

// StageCounts records how many rows survived each cleaning stage.
type StageCounts struct {
	Loaded    int
	Validated int
	Deduped   int
	English   int
	Free      int
}

// StoreResult holds the cleaned-data analysis for one store.
type StoreResult struct {
	Store       string
	GroupLabel  string
	MetricLabel string
	Counts      StageCounts
	// Dedupe is nil for stores that carry a unique app id and need no
	// duplicate resolution.
	Dedupe      *clean.DedupeStats
	Frequencies []stats.Entry
	Averages    []stats.Entry
}

// Report is the printable outcome of one run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Apple       StoreResult
	Google      StoreResult
}

// Run executes the whole pipeline: load, validate, resolve duplicates
// (Google only — Apple rows carry a unique track id), filter to
// English free apps, then aggregate. Any stage failure aborts the run
// with an error naming the stage.
func Run(opts Options) (*Report, error) {
	rep := opts.Reporter
	if rep == nil {
		rep = clean.StderrReporter
	}
	limit := opts.NonASCIILimit
	if limit <= 0 {
		limit = clean.DefaultNonASCIILimit
	}

	apple, err := analyzeStore(opts.ApplePath, dataset.AppleStore, false, limit, opts.TopN, rep)
	if err != nil {
		return nil, fmt.Errorf("apple dataset: %w", err)
	}
	google, err := analyzeStore(opts.GooglePath, dataset.GooglePlay, true, limit, opts.TopN, rep)
	if err != nil {
		return nil, fmt.Errorf("google dataset: %w", err)
	}

	apple.GroupLabel, apple.MetricLabel = "genre", "avg rating count"
	google.GroupLabel, google.MetricLabel = "category", "avg installs"

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Apple:       *apple,
		Google:      *google,
	}, nil
}

func analyzeStore(path string, sc dataset.Schema, dedupe bool, limit, topN int, rep clean.Reporter) (*StoreResult, error) {
	res := &StoreResult{Store: sc.Store}

	ds, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	res.Counts.Loaded = ds.Len()

	ds, err = clean.ValidateRows(ds, rep)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	res.Counts.Validated = ds.Len()

	if dedupe {
		deduped, st, err := clean.ResolveDuplicates(ds, sc)
		if err != nil {
			return nil, fmt.Errorf("resolve duplicates: %w", err)
		}
		ds = deduped
		res.Dedupe = &st
	}
	res.Counts.Deduped = ds.Len()

	ds = clean.FilterEnglish(ds, sc, limit)
	res.Counts.English = ds.Len()

	ds = clean.FilterFree(ds, sc)
	res.Counts.Free = ds.Len()

	res.Frequencies = truncate(stats.Frequencies(ds, sc.GroupCol).Entries(), topN)

	means, err := stats.GroupMeans(ds, sc.GroupCol, sc.ValueCol, sc.NormalizeValue)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	res.Averages = truncate(stats.MeanEntries(means), topN)

	return res, nil
}

func truncate(entries []stats.Entry, n int) []stats.Entry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}
