package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/config"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers/fixture"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers/playersapi"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.DataSource {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderHTTP, "":
		return playersapi.NewClient(playersapi.Config{
			BaseURL: cfg.PlayersAPI.BaseURL,
			Timeout: cfg.PlayersAPI.Timeout,
		})
	case config.ProviderFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
