package portal_test

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediai-platform/mediai/authclient"
	"github.com/mediai-platform/mediai/portal"
	"github.com/mediai-platform/mediai/session"
	"github.com/mediai-platform/mediai/tokenstore"
)

func backendHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/token/":
		var creds struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "John_Doe" || creds.Password != "SecurePass123!" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access":"A1","refresh":"R1"}`))
	case "/api/users/dashboard/":
		if r.Header.Get("Authorization") != "Bearer A1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"message":"Welcome Doctor","specialty":"Cardiology","email":"doc@example.com"}`))
	default:
		http.NotFound(w, r)
	}
}

// newPortal returns the portal server and a cookie-keeping client that
// does not follow redirects, so each 303 can be asserted directly.
func newPortal(t *testing.T) (*httptest.Server, *http.Client, *session.Manager) {
	t.Helper()

	backend := httptest.NewServer(http.HandlerFunc(backendHandler))
	t.Cleanup(backend.Close)

	auth, err := authclient.New(backend.URL, tokenstore.NewMemStore())
	require.NoError(t, err)
	mgr := session.NewManager(auth)

	srv := httptest.NewServer(portal.New(mgr).Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return srv, client, mgr
}

func get(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func login(t *testing.T, client *http.Client, base string) *http.Response {
	t.Helper()
	form := url.Values{
		"username": {"John_Doe"},
		"password": {"SecurePass123!"},
	}
	resp, err := client.PostForm(base+"/login", form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGuard_RootAndProtectedRedirects(t *testing.T) {
	srv, client, _ := newPortal(t)

	t.Run("anonymous root goes to login", func(t *testing.T) {
		resp := get(t, client, srv.URL+"/")
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("anonymous protected route goes to login", func(t *testing.T) {
		resp := get(t, client, srv.URL+"/patients")
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("authenticated root and entry routes go to dashboard", func(t *testing.T) {
		resp := login(t, client, srv.URL)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/dashboard", resp.Header.Get("Location"))

		for _, path := range []string{"/", "/login", "/register"} {
			resp := get(t, client, srv.URL+path)
			require.Equal(t, http.StatusSeeOther, resp.StatusCode)
			require.Equal(t, "/dashboard", resp.Header.Get("Location"))
		}
	})
}

func TestLogin_BadCredentials(t *testing.T) {
	srv, client, mgr := newPortal(t)

	resp, err := client.PostForm(srv.URL+"/login", url.Values{
		"username": {"John_Doe"},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, decode(t, resp)["error"], "No active account found")
	require.False(t, mgr.IsAuthenticated())
}

func TestLogoutFlash_ShownExactlyOnce(t *testing.T) {
	srv, client, _ := newPortal(t)
	login(t, client, srv.URL)

	resp := get(t, client, srv.URL+"/logout")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))

	first := get(t, client, srv.URL+"/login")
	require.Equal(t, http.StatusOK, first.StatusCode)
	require.Equal(t, "Successfully logged out.", decode(t, first)["flash"])

	second := get(t, client, srv.URL+"/login")
	require.Equal(t, http.StatusOK, second.StatusCode)
	require.NotContains(t, decode(t, second), "flash")
}

func TestDashboard_ProxiesProfile(t *testing.T) {
	srv, client, _ := newPortal(t)
	login(t, client, srv.URL)

	resp := get(t, client, srv.URL+"/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	profile, ok := body["profile"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Welcome Doctor", profile["message"])
	require.Equal(t, "Cardiology", profile["specialty"])
}

func TestPatients_SearchAndFilter(t *testing.T) {
	srv, client, _ := newPortal(t)
	login(t, client, srv.URL)

	resp := get(t, client, srv.URL+"/patients?q=hypertension&filter=active")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	patients, ok := body["patients"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, patients)
	for _, p := range patients {
		cond := p.(map[string]any)["Condition"].(string)
		require.True(t, strings.Contains(strings.ToLower(cond), "hypertension"))
	}
}

func TestChat_ThreadAndUnknown(t *testing.T) {
	srv, client, _ := newPortal(t)
	login(t, client, srv.URL)

	resp := get(t, client, srv.URL+"/chat/patient-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	missing := get(t, client, srv.URL+"/chat/patient-99")
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestReport_Aggregates(t *testing.T) {
	srv, client, _ := newPortal(t)
	login(t, client, srv.URL)

	resp := get(t, client, srv.URL+"/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	require.Contains(t, body, "patients")
	require.Contains(t, body, "appointments_today")
	require.Contains(t, body, "unread_threads")
}
