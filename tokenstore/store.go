// Package tokenstore persists the client-side session slots.
//
// The store is a plain key/value surface over a handful of named string
// slots. Possession of the access slot is the sole authentication signal the
// rest of the toolkit consumes; nothing here inspects token contents or
// enforces expiry.
package tokenstore

// Well-known slot keys.
const (
	KeyAccess         = "access"
	KeyRefresh        = "refresh"
	KeyRememberedUser = "remembered_user"
)

// Store holds named string slots. Writers always replace the whole slot
// value; concurrent writers are last-write-wins.
type Store interface {
	// Get returns the slot value and whether it is present and non-empty.
	Get(key string) (string, bool)
	// Set overwrites the slot. The value is persisted before Set returns.
	Set(key, value string) error
	// Clear removes the slot. Clearing an absent slot is a no-op.
	Clear(key string) error
}
