package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/config"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/metrics"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers/fixture"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/testutil"
)

// metricsSetupSuccess allows us to force a handler to test buildMetrics success path.
func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	rec := metrics.NewRecorder()
	return rec, http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsSetup(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithMetrics(cfg, nil, fixture.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv, err := newServerWithMetrics(cfg, nil, fixture.New(), rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown when the recorder is injected")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}

	if err := srv.poller.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if rec.DataSourceCalls(config.ProviderFixture) != 1 {
		t.Fatalf("expected list call recorded on injected recorder")
	}
}
