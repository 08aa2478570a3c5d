package authclient

// RefreshOutcome is the tagged result of a silent token refresh. Rejection
// and transport loss are distinct outcomes: only rejection wipes the
// session, a network error is retried on the next tick.
type RefreshOutcome int

const (
	// RefreshOK: the access slot was overwritten with a fresh token.
	RefreshOK RefreshOutcome = iota
	// RefreshNoToken: the refresh slot is absent; no network call was made.
	RefreshNoToken
	// RefreshRejected: the backend refused the refresh token. Both slots
	// were cleared (full session wipe).
	RefreshRejected
	// RefreshNetworkError: the request never completed. Slots are untouched.
	RefreshNetworkError
	// RefreshDiscarded: the refresh succeeded on the wire but the session
	// moved on while it was in flight (logout or re-login), so the result
	// was dropped instead of resurrecting a dead session.
	RefreshDiscarded
)

func (o RefreshOutcome) String() string {
	switch o {
	case RefreshOK:
		return "ok"
	case RefreshNoToken:
		return "no_token"
	case RefreshRejected:
		return "rejected"
	case RefreshNetworkError:
		return "network_error"
	case RefreshDiscarded:
		return "discarded"
	}
	return "unknown"
}
