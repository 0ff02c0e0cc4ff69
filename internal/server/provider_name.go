package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers/fixture"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers/playersapi"
)

// normalizeProviderName returns a lower-cased provider name, deriving from the instance when not configured.
// Used for the source label in metrics and logs.
func normalizeProviderName(raw string, source providers.DataSource) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	switch source.(type) {
	case nil:
		return "provider"
	case *playersapi.Client:
		return playersapi.ProviderName
	case *fixture.Provider:
		return fixture.ProviderName
	default:
		return strings.ToLower(fmt.Sprintf("%T", source))
	}
}
