// Package authclient mediates between the token store and the MediAI
// backend's token and registration endpoints.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mediai-platform/mediai/tokenstore"
	"github.com/pkg/errors"
)

// Backend endpoint paths (Django SimpleJWT layout).
const (
	pathToken           = "/api/token/"
	pathTokenRefresh    = "/api/token/refresh/"
	pathDoctorRegister  = "/api/users/register/"
	pathPatientRegister = "/api/customers/register/"
	pathDashboard       = "/api/users/dashboard/"
)

const defaultTimeout = 10 * time.Second

// Client wraps a token store and the backend token endpoints.
type Client struct {
	baseURL string
	store   tokenstore.Store
	http    *http.Client
}

// Option modifies a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for tests
// and for callers that want their own timeout policy).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New creates a Client against baseURL using store for token persistence.
func New(baseURL string, store tokenstore.Store, options ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("[authclient.New] store is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("[authclient.New] baseURL is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// IsAuthenticated reports whether the access slot holds a token. It is a
// presence check only: the token is never decoded or verified and no network
// call is made.
func (c *Client) IsAuthenticated() bool {
	_, ok := c.store.Get(tokenstore.KeyAccess)
	return ok
}

// AccessToken returns the current access token, if any.
func (c *Client) AccessToken() (string, bool) {
	return c.store.Get(tokenstore.KeyAccess)
}

// RememberedUser returns the username saved by a "remember me" login.
func (c *Client) RememberedUser() (string, bool) {
	return c.store.Get(tokenstore.KeyRememberedUser)
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Detail  string `json:"detail"`
}

// Login exchanges credentials for a token pair and writes both slots. When
// rememberMe is set the username is persisted as a convenience slot; it has
// no effect on token longevity.
func (c *Client) Login(ctx context.Context, username, password string, rememberMe bool) error {
	body := map[string]string{"username": username, "password": password}

	resp, err := c.postJSON(ctx, pathToken, body)
	if err != nil {
		return errors.Wrap(ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	var tokens tokenPairResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return errors.Wrap(err, "[Client.Login] decode response")
	}

	if resp.StatusCode != http.StatusOK {
		detail := tokens.Detail
		if detail == "" {
			detail = "Invalid credentials. Please try again."
		}
		return errors.Wrap(ErrInvalidCredentials, detail)
	}

	if err := c.store.Set(tokenstore.KeyAccess, tokens.Access); err != nil {
		return errors.Wrap(err, "[Client.Login] persist access token")
	}
	if err := c.store.Set(tokenstore.KeyRefresh, tokens.Refresh); err != nil {
		return errors.Wrap(err, "[Client.Login] persist refresh token")
	}

	if rememberMe {
		if err := c.store.Set(tokenstore.KeyRememberedUser, username); err != nil {
			return errors.Wrap(err, "[Client.Login] persist remembered user")
		}
	} else if err := c.store.Clear(tokenstore.KeyRememberedUser); err != nil {
		return errors.Wrap(err, "[Client.Login] clear remembered user")
	}
	return nil
}

// RefreshOption adjusts a single refresh call.
type RefreshOption func(*refreshCall)

type refreshCall struct {
	commit func() bool
}

// RefreshIf installs a commit check evaluated immediately before the access
// slot is written. When it returns false the successful response is
// discarded, so a refresh that raced a logout cannot write a stale token.
func RefreshIf(commit func() bool) RefreshOption {
	return func(rc *refreshCall) { rc.commit = commit }
}

// RefreshAccessToken rotates the access token using the stored refresh
// token. It never retries. A rejected refresh wipes both slots; a transport
// failure leaves the session untouched so the caller can try again later.
func (c *Client) RefreshAccessToken(ctx context.Context, options ...RefreshOption) RefreshOutcome {
	call := refreshCall{commit: func() bool { return true }}
	for _, opt := range options {
		opt(&call)
	}

	refresh, ok := c.store.Get(tokenstore.KeyRefresh)
	if !ok {
		return RefreshNoToken
	}

	resp, err := c.postJSON(ctx, pathTokenRefresh, map[string]string{"refresh": refresh})
	if err != nil {
		return RefreshNetworkError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.Logout()
		return RefreshRejected
	}

	var tokens tokenPairResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil || tokens.Access == "" {
		// A success status with no usable token is indistinguishable from a
		// broken backend; treat it as a rejection rather than keeping a
		// token of unknown freshness.
		c.Logout()
		return RefreshRejected
	}

	if !call.commit() {
		return RefreshDiscarded
	}
	if err := c.store.Set(tokenstore.KeyAccess, tokens.Access); err != nil {
		return RefreshNetworkError
	}
	return RefreshOK
}

// Logout unconditionally clears both token slots. No network call is made
// and calling it on an already-cleared store is a no-op.
func (c *Client) Logout() {
	_ = c.store.Clear(tokenstore.KeyAccess)
	_ = c.store.Clear(tokenstore.KeyRefresh)
}

// DashboardProfile is the authenticated doctor profile returned by the
// backend dashboard endpoint.
type DashboardProfile struct {
	Message   string `json:"message"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
}

// Dashboard fetches the doctor profile using the stored access token.
func (c *Client) Dashboard(ctx context.Context) (*DashboardProfile, error) {
	access, ok := c.store.Get(tokenstore.KeyAccess)
	if !ok {
		return nil, ErrUnauthorized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathDashboard, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Dashboard] build request")
	}
	req.Header.Set("Authorization", "Bearer "+access)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("[Client.Dashboard] unexpected status %d", resp.StatusCode)
	}

	var profile DashboardProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "[Client.Dashboard] decode response")
	}
	return &profile, nil
}

// RegisterDoctor validates the form locally and, only when every check
// passes, submits it to the doctor registration endpoint.
func (c *Client) RegisterDoctor(ctx context.Context, form DoctorForm) error {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return fieldErrs
	}
	return c.register(ctx, pathDoctorRegister, form.payload())
}

// RegisterPatient validates and submits the mobile patient registration.
func (c *Client) RegisterPatient(ctx context.Context, form PatientForm) error {
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return fieldErrs
	}
	return c.register(ctx, pathPatientRegister, map[string]string{
		"username": form.Username,
		"email":    form.Email,
		"password": form.Password,
	})
}

func (c *Client) register(ctx context.Context, path string, payload any) error {
	resp, err := c.postJSON(ctx, path, payload)
	if err != nil {
		return errors.Wrap(ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	return errors.Wrap(ErrRegistrationFailed, serverRegistrationError(raw))
}

// serverRegistrationError maps the backend's per-field validation shape
// ({"username": ["..."], ...} or {"detail": "..."}) to display text.
func serverRegistrationError(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "Registration failed. Please try again."
	}

	// Known fields first, matching the order the web client surfaces them.
	for _, field := range []string{"username", "email", "license_number"} {
		if msgs, ok := body[field].([]any); ok && len(msgs) > 0 {
			parts := make([]string, 0, len(msgs))
			for _, m := range msgs {
				parts = append(parts, fmt.Sprint(m))
			}
			return fmt.Sprintf("%s: %s", displayName(field), strings.Join(parts, " "))
		}
	}
	if detail, ok := body["detail"].(string); ok && detail != "" {
		return detail
	}
	return "Registration failed. Please try again."
}

func displayName(field string) string {
	switch field {
	case "username":
		return "Username"
	case "email":
		return "Email"
	case "license_number":
		return "License"
	}
	return field
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}
