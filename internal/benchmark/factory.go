package benchmark

import (
	"context"

	"resumatch/internal/config"
	"resumatch/internal/errors"
)

// NewFromConfig builds the provider stack the configuration asks for:
// a remote provider when enabled, otherwise a file provider with an
// optional watcher, otherwise the static tables. The returned stop
// function releases any background resources and is safe to call once.
func NewFromConfig(ctx context.Context, cfg config.BenchmarksConfig, logger *errors.Logger) (Provider, func(), error) {
	if cfg.Remote.Enabled {
		remote := NewRemoteProvider(cfg.Remote, logger)
		remote.Start(ctx)
		return remote, remote.Stop, nil
	}

	if cfg.File != "" {
		provider, err := NewFileProvider(cfg.File, logger)
		if err != nil {
			return nil, nil, err
		}

		if !cfg.Watch.Enabled {
			return provider, func() {}, nil
		}

		watcher, err := NewFileWatcher(cfg.File, cfg.Watch.DebounceDelay, func() {
			if err := provider.Reload(); err != nil {
				logger.LogError(err, "Benchmark table reload failed, keeping previous table",
					"file", provider.Path())
			}
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := watcher.Start(); err != nil {
			return nil, nil, err
		}

		stop := func() {
			if err := watcher.Stop(); err != nil {
				logger.LogError(err, "Failed to stop benchmark file watcher")
			}
		}
		return provider, stop, nil
	}

	return NewStatic(), func() {}, nil
}
