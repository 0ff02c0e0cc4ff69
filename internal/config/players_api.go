package config

// PlayersAPIConfig controls how we talk to the players REST backend.
type PlayersAPIConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

func loadPlayersAPI(base PlayersAPIConfig) PlayersAPIConfig {
	return PlayersAPIConfig{
		BaseURL: envOrDefault(envAPIURL, base.BaseURL),
		Timeout: durationEnvOrDefault(envAPITimeout, base.Timeout),
	}
}
