package config

import (
	"slices"
	"strings"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string           `yaml:"port"`
	Provider        string           `yaml:"provider"`
	RefreshInterval Duration         `yaml:"refresh_interval"`
	DefaultPageSize int              `yaml:"default_page_size"`
	PlayersAPI      PlayersAPIConfig `yaml:"players_api"`
	Metrics         MetricsConfig    `yaml:"metrics"`
}

// Defaults returns the configuration used when neither a file nor the environment sets a value.
func Defaults() Config {
	return Config{
		Port:            defaultPort,
		Provider:        defaultProvider,
		RefreshInterval: defaultRefreshInterval,
		DefaultPageSize: defaultPageSize,
		PlayersAPI: PlayersAPIConfig{
			BaseURL: defaultAPIURL,
			Timeout: defaultAPITimeout,
		},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and then
// environment variables, which take precedence.
func Load() (Config, error) {
	cfg := Defaults()
	if path := envOrDefault(envConfigFile, ""); path != "" {
		fileCfg, err := LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Provider = strings.ToLower(strings.TrimSpace(envOrDefault(envProvider, cfg.Provider)))
	cfg.RefreshInterval = nonNegativeDurationEnvOrDefault(envRefreshInterval, cfg.RefreshInterval)
	cfg.DefaultPageSize = pageSizeOrDefault(intEnvOrDefault(envDefaultPageSize, cfg.DefaultPageSize))
	cfg.PlayersAPI = loadPlayersAPI(cfg.PlayersAPI)
	cfg.Metrics = loadMetrics(cfg.Metrics)
	return cfg
}

func pageSizeOrDefault(size int) int {
	if slices.Contains(PageSizes, size) {
		return size
	}
	return defaultPageSize
}
