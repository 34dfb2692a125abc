package run

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/akbarw/onlinebank/internal/application"
)

// Eviction periodically drops elapsed login attempt windows,
// keeping the limiter's memory bounded for long running processes.
func Eviction(ctx context.Context, app *application.App, wg *sync.WaitGroup) {
	defer wg.Done()
	log.Info().
		Dur("interval", app.Cfg.LoginEvictionInterval).
		Msg("Starting eviction of stale login attempt windows")
	app.LoginLimiter.Run(ctx, app.Cfg.LoginEvictionInterval)
}
