// Package storage provides the key/value persistence layer behind the session
// and progress stores.
//
// # Overview
//
// Store is the contract the higher layers depend on. Three implementations
// are provided:
//
//   - SQLiteStore: device-local file, the default. Schema is created by
//     OpenSQLite through embedded goose migrations (see ./migrations).
//   - MemoryStore: process-local map, used by tests and by "-s memory".
//   - RedisStore: keys under a namespace prefix in a Redis database.
//
// Values are opaque bytes; the session and progress stores put JSON in them.
//
// # Error Handling
//
// A missing key is not an error: Get returns (nil, nil). Driver or network
// failures are wrapped with common.ErrStoreUnavailable so callers can match
// them with errors.Is.
//
// # Concurrency
//
// All implementations are safe for concurrent use. There is no cross-process
// coordination: the last write wins.
package storage
