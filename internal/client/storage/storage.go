// Package storage provides the persistence adapter for named JSON blobs:
// the stand-in for the browser localStorage the web iterations relied on.
package storage

// Store reads and writes named JSON values.
//
// Contract:
//   - Load decodes the blob stored under key into out and reports whether it
//     did. Absent keys, unreadable backends and corrupt blobs all leave out
//     untouched and return false, so callers keep whatever fallback they
//     pre-filled; Load never fails.
//   - Save serializes value and stores it under key.
//   - Remove clears the key.
type Store interface {
	Load(key string, out any) bool
	Save(key string, value any) error
	Remove(key string) error
	Close() error
}
