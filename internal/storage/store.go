// Package storage defines the narrow key/value persistence port the session
// engine depends on, plus the concrete adapters (SQLite, per-key files,
// in-memory). Higher components never touch a storage technology directly.
package storage

// Store is the durable key/value port. Writes are atomic from the caller's
// point of view: a reader never observes a partially written value.
type Store interface {
	// Read returns the stored value and whether the key exists.
	Read(key string) (string, bool, error)
	Write(key, value string) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(key string) error
	// Keys lists stored keys with the given prefix, in unspecified order.
	Keys(prefix string) ([]string, error)
}
