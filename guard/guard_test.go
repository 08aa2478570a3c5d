package guard_test

import (
	"testing"

	"github.com/mediai-platform/mediai/guard"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		route         string
		authenticated bool
		wantRedirect  bool
		wantTarget    string
	}{
		{"root forwards authed to dashboard", "/", true, true, "/dashboard"},
		{"root forwards anonymous to login", "/", false, true, "/login"},
		{"protected renders when authed", "/dashboard", true, false, ""},
		{"protected redirects anonymous", "/dashboard", false, true, "/login"},
		{"patients redirects anonymous", "/patients", false, true, "/login"},
		{"chat thread is protected", "/chat/patient-3", false, true, "/login"},
		{"login renders for anonymous", "/login", false, false, ""},
		{"login bounces authed forward", "/login", true, true, "/dashboard"},
		{"register bounces authed forward", "/register", true, true, "/dashboard"},
		{"logout always renders", "/logout", true, false, ""},
		{"unknown path renders", "/terms", false, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := guard.Decide(tc.route, tc.authenticated)
			require.Equal(t, tc.wantRedirect, d.Redirect)
			require.Equal(t, tc.wantTarget, d.Target)
		})
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, guard.Entry, guard.Classify("/login"))
	require.Equal(t, guard.Protected, guard.Classify("/settings"))
	require.Equal(t, guard.Protected, guard.Classify("/chat/patient-1"))
	require.Equal(t, guard.Public, guard.Classify("/logout"))
	require.Equal(t, guard.Public, guard.Classify("/privacy"))
}
