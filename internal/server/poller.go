package server

import (
	"context"

	"github.com/preston-bernstein/nba-daily-deck/internal/poller"
)

// Poller defines the minimal schedule warmer behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
