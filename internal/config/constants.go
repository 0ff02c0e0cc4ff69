package config

import "time"

const (
	envConfigFile      = "CONFIG_FILE"
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envAPIURL          = "API_URL"
	envAPITimeout      = "API_TIMEOUT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envDefaultPageSize = "DEFAULT_PAGE_SIZE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort       = "8080"
	defaultProvider   = ProviderHTTP
	defaultAPIURL     = "http://localhost:8000"
	defaultAPITimeout = 10 * Duration(time.Second)
	// Zero disables periodic reloads; the collection is loaded at start and after mutations.
	defaultRefreshInterval = Duration(0)
	defaultPageSize        = 10
	defaultMetricsPort     = "9090"
	defaultServiceName     = "baseball-stats-dashboard"
)

// Data source selectors accepted by PROVIDER.
const (
	ProviderHTTP    = "http"
	ProviderFixture = "fixture"
)

// PageSizes is the fixed set of rows-per-page options offered by the dashboard.
var PageSizes = []int{5, 10, 25}
