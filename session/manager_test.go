package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediai-platform/mediai/authclient"
	"github.com/mediai-platform/mediai/session"
	"github.com/mediai-platform/mediai/tokenstore"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, handler http.HandlerFunc) (*session.Manager, *tokenstore.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := tokenstore.NewMemStore()
	auth, err := authclient.New(srv.URL, store)
	require.NoError(t, err)
	return session.NewManager(auth), store
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/token/":
		_, _ = w.Write([]byte(`{"access":"A1","refresh":"R1"}`))
	case "/api/token/refresh/":
		_, _ = w.Write([]byte(`{"access":"A2"}`))
	default:
		http.NotFound(w, r)
	}
}

func TestManager_LoginBumpsEpochAndNotifies(t *testing.T) {
	mgr, _ := newManager(t, loginHandler)

	events, cancel := mgr.Subscribe()
	defer cancel()

	require.EqualValues(t, 0, mgr.Epoch())
	require.NoError(t, mgr.Login(context.Background(), "John_Doe", "SecurePass123!", false))
	require.EqualValues(t, 1, mgr.Epoch())
	require.True(t, mgr.IsAuthenticated())

	select {
	case ev := <-events:
		require.True(t, ev.Authenticated)
		require.EqualValues(t, 1, ev.Epoch)
	case <-time.After(time.Second):
		t.Fatal("no auth event delivered")
	}
}

func TestManager_LogoutClearsAndFlashesOnce(t *testing.T) {
	mgr, store := newManager(t, loginHandler)
	require.NoError(t, mgr.Login(context.Background(), "John_Doe", "SecurePass123!", false))

	mgr.Logout("Successfully logged out.")

	_, ok := store.Get(tokenstore.KeyAccess)
	require.False(t, ok)
	_, ok = store.Get(tokenstore.KeyRefresh)
	require.False(t, ok)

	msg, ok := mgr.ConsumeFlash()
	require.True(t, ok)
	require.Equal(t, "Successfully logged out.", msg)

	// The message rides exactly one navigation.
	_, ok = mgr.ConsumeFlash()
	require.False(t, ok)
}

func TestManager_RefreshAfterLogoutIsNoop(t *testing.T) {
	mgr, _ := newManager(t, loginHandler)
	outcome := mgr.Refresh(context.Background())
	require.Equal(t, authclient.RefreshNoToken, outcome)
}

func TestManager_StaleRefreshCannotResurrectSession(t *testing.T) {
	inRefresh := make(chan struct{})
	release := make(chan struct{})

	mgr, store := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/":
			_, _ = w.Write([]byte(`{"access":"A1","refresh":"R1"}`))
		case "/api/token/refresh/":
			close(inRefresh)
			<-release
			_, _ = w.Write([]byte(`{"access":"A2"}`))
		}
	})

	require.NoError(t, mgr.Login(context.Background(), "John_Doe", "SecurePass123!", false))

	outcomes := make(chan authclient.RefreshOutcome, 1)
	go func() { outcomes <- mgr.Refresh(context.Background()) }()

	<-inRefresh
	mgr.Logout("Successfully logged out.")
	close(release)

	select {
	case outcome := <-outcomes:
		require.Equal(t, authclient.RefreshDiscarded, outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not complete")
	}

	// The in-flight success must not have written the access slot back.
	_, ok := store.Get(tokenstore.KeyAccess)
	require.False(t, ok)
	require.False(t, mgr.IsAuthenticated())
}

func TestManager_RejectedRefreshNotifiesSubscribers(t *testing.T) {
	mgr, _ := newManager(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/":
			_, _ = w.Write([]byte(`{"access":"A1","refresh":"R1"}`))
		case "/api/token/refresh/":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
		}
	})
	require.NoError(t, mgr.Login(context.Background(), "John_Doe", "SecurePass123!", false))

	events, cancel := mgr.Subscribe()
	defer cancel()

	outcome := mgr.Refresh(context.Background())
	require.Equal(t, authclient.RefreshRejected, outcome)
	require.False(t, mgr.IsAuthenticated())

	select {
	case ev := <-events:
		require.False(t, ev.Authenticated)
	case <-time.After(time.Second):
		t.Fatal("no invalidation event delivered")
	}
}
