package localstore

import "context"

// Store is the persistent key/value surface shared by every console
// context (other processes, other machines pointed at the same
// backend). Writes are immediately durable. Change notifications are
// best-effort: a context must not rely on receiving one for its own
// writes, so readers poll in addition to listening.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set persists the value and notifies other contexts of the change.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// Notifications returns a channel of keys changed by other contexts.
	// The channel closes when ctx is done.
	Notifications(ctx context.Context) (<-chan string, error)
}
