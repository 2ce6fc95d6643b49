// Package store holds the structured task collection and its file backends.
//
// A [Store] is an in-memory, insertion-ordered collection of tasks keyed by
// ID. It is loaded once at the start of a run, mutated by the reconciler and
// saved once at the end.
//
// # Backends
//
// A [Backend] persists a Store:
//
//   - yaml (default): todos/tasks.yaml, written atomically
//   - json: todos/tasks.json, written atomically
//   - sqlite: todos/tasks.db, schema created by a versioned migration
//
// A missing store file is an error wrapping [fs.ErrNotExist]; callers create
// the file explicitly by saving an empty store.
//
// # Identity
//
// [Store.NewID] returns 8 lowercase hex characters taken from a random UUID,
// checked against the IDs already present.
package store
