package server

import (
	"log/slog"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/config"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// providerFactory assembles the data source with shared instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataSource {
	return f.wrap(cfg, selectSource(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, source providers.DataSource) providers.DataSource {
	return providers.NewInstrumented(source, normalizeProviderName(cfg.Provider, source), f.logger, f.metrics)
}
