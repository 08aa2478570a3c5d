// Package session owns the client-side session lifecycle: the monotonic
// session epoch, auth-state change notifications, the one-time navigation
// flash message, and the background silent-refresh loop.
package session

import (
	"context"
	"sync"

	"github.com/mediai-platform/mediai/authclient"
)

// Event is delivered to subscribers whenever the auth state changes.
type Event struct {
	Authenticated bool
	Epoch         uint64
}

// Manager wraps the auth client with epoch tracking so that operations
// started under one session cannot write into the next one.
type Manager struct {
	auth *authclient.Client

	mu      sync.Mutex
	epoch   uint64
	flash   string
	gotMsg  bool
	nextSub int
	subs    map[int]chan Event
}

func NewManager(auth *authclient.Client) *Manager {
	return &Manager{
		auth: auth,
		subs: map[int]chan Event{},
	}
}

// Auth exposes the underlying client for read-only calls (dashboard, etc.).
func (m *Manager) Auth() *authclient.Client { return m.auth }

func (m *Manager) IsAuthenticated() bool { return m.auth.IsAuthenticated() }

// Epoch returns the current session generation. It advances on every login
// and logout.
func (m *Manager) Epoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Login authenticates and starts a new session epoch.
func (m *Manager) Login(ctx context.Context, username, password string, rememberMe bool) error {
	if err := m.auth.Login(ctx, username, password, rememberMe); err != nil {
		return err
	}
	m.bump(true)
	return nil
}

// Logout clears the session, advances the epoch, and leaves a one-time
// confirmation message for the next login view.
func (m *Manager) Logout(flash string) {
	m.auth.Logout()
	if flash != "" {
		m.SetFlash(flash)
	}
	m.bump(false)
}

// Refresh performs one guarded silent refresh. The epoch is snapshotted
// before the network call; if a logout or re-login lands while the request
// is in flight, the response is discarded.
func (m *Manager) Refresh(ctx context.Context) authclient.RefreshOutcome {
	epoch := m.Epoch()
	outcome := m.auth.RefreshAccessToken(ctx, authclient.RefreshIf(func() bool {
		return m.Epoch() == epoch
	}))
	refreshOutcomes.WithLabelValues(outcome.String()).Inc()
	if outcome == authclient.RefreshRejected {
		// The wipe already happened inside the client; surface it to
		// subscribers so views stop rendering protected content.
		m.bump(false)
	}
	return outcome
}

// SetFlash stores a message to be consumed by exactly one later read.
func (m *Manager) SetFlash(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flash = msg
	m.gotMsg = true
}

// ConsumeFlash returns the pending message, if any, and clears it. A second
// call returns nothing: the message rides a single navigation.
func (m *Manager) ConsumeFlash() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.gotMsg {
		return "", false
	}
	msg := m.flash
	m.flash, m.gotMsg = "", false
	return msg, true
}

// Subscribe registers for auth-state change events. The returned cancel
// func must be called to release the subscription. Slow subscribers drop
// events rather than blocking the session.
func (m *Manager) Subscribe() (<-chan Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan Event, 4)
	m.subs[id] = ch
	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}
}

func (m *Manager) bump(authenticated bool) {
	m.mu.Lock()
	m.epoch++
	ev := Event{Authenticated: authenticated, Epoch: m.epoch}
	subs := make([]chan Event, 0, len(m.subs))
	for _, ch := range m.subs {
		subs = append(subs, ch)
	}
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
