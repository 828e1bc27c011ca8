// Package storage persists named JSON snapshots. Each logical store (the
// portfolio document, the theme settings) is one complete blob under a fixed
// key; there are no incremental writes and no schema versioning.
package storage

import "context"

// Well-known snapshot keys.
const (
	PortfolioKey = "portfolioData"
	SettingsKey  = "portfolioSettings"
)

// Store is a key-value snapshot store. Implementations must never panic on a
// failed backing store; errors are returned for the caller to log and absorb.
type Store interface {
	// Load returns the snapshot stored under key. ok is false when the key
	// has never been written.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Save replaces the snapshot stored under key with value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the snapshot stored under key. Deleting an absent key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backing store.
	Close() error
}
