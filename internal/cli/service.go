package cli

import (
	"context"

	"resumatch/internal/analyzer"
	"resumatch/internal/benchmark"
	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/extract"
	"resumatch/internal/store"
)

// taggerFromConfig selects the part-of-speech tagger named in the
// configuration. The prose tagger is the default.
func taggerFromConfig(cfg *config.Config) extract.Tagger {
	if cfg.Analysis.Tagger == "heuristic" {
		return extract.NewHeuristicTagger()
	}
	return extract.NewProseTagger()
}

// newAnalysisService builds the full scoring pipeline with the configured
// benchmark provider stack. The returned stop function releases any
// benchmark background resources (remote refresher or file watcher).
func newAnalysisService(ctx context.Context, cfg *config.Config, logger *errors.Logger) (*analyzer.Service, func(), error) {
	bench, stop, err := benchmark.NewFromConfig(ctx, cfg.Benchmarks, logger)
	if err != nil {
		return nil, nil, err
	}
	return analyzer.NewService(taggerFromConfig(cfg), bench), stop, nil
}

// openStore opens the result store when enabled. A disabled store returns
// nil without error; callers must handle the nil.
func openStore(cfg *config.Config) (store.Store, error) {
	if !cfg.Store.Enabled {
		return nil, nil
	}
	return store.OpenSQLite(cfg.Store.Path)
}
