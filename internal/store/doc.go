// Package store provides file-based persistence for user preferences.
//
// It contains the concrete implementation of domain.PreferenceStore,
// serialising all values as a single JSON object on disk. All methods are
// concurrency-safe via internal locking. The stored file lives under the
// user's configured home directory.
package store
