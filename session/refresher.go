package session

import (
	"context"
	"time"

	"github.com/mediai-platform/mediai/authclient"
	"github.com/rs/zerolog"
)

// Refresher periodically rotates the access token so a long-lived session
// does not silently expire. Outcomes are fire-and-forget: a failed refresh
// surfaces only when a protected action next finds no access token.
type Refresher struct {
	mgr      *Manager
	interval time.Duration
	log      zerolog.Logger
}

func NewRefresher(mgr *Manager, interval time.Duration, log zerolog.Logger) *Refresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Refresher{mgr: mgr, interval: interval, log: log}
}

// Run ticks until ctx is cancelled. The tick fires regardless of auth
// state; a tick with no refresh token is an immediate no-op inside the
// client, so a dangling timer after logout is harmless.
func (r *Refresher) Run(ctx context.Context) {
	events, cancel := r.mgr.Subscribe()
	defer cancel()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			// Auth state changed; restart the cadence so a fresh login gets
			// a full interval before its first silent refresh.
			ticker.Reset(r.interval)
		case <-ticker.C:
			outcome := r.mgr.Refresh(ctx)
			switch outcome {
			case authclient.RefreshOK:
				r.log.Debug().Msg("access token refreshed")
			case authclient.RefreshNoToken:
				// Logged out; nothing to do until the next login.
			case authclient.RefreshRejected:
				r.log.Warn().Msg("refresh token rejected, session cleared")
			case authclient.RefreshNetworkError:
				r.log.Warn().Msg("token refresh failed (network), will retry next tick")
			case authclient.RefreshDiscarded:
				r.log.Debug().Msg("stale refresh result discarded")
			}
		}
	}
}
