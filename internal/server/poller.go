package server

import (
	"context"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Reload(ctx context.Context) error
	Status() poller.Status
}
