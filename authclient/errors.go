package authclient

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNetwork            = errors.New("network error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNoRefreshToken     = errors.New("no refresh token")
	ErrRegistrationFailed = errors.New("registration failed")
)

// FieldErrors carries per-field validation failures, keyed by form field
// name. It is returned before any network call is made.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	for _, msg := range fe {
		return msg // any one message; callers render the full map
	}
	return "validation failed"
}
