// Package store persists clustering runs and their labellings in SQLite,
// using the pure-Go modernc.org/sqlite driver.
//
// Schema:
//
//	runs(id, source, method, metric, clusters, seed, texts, edges, n_groups, elapsed_ms, created_at)
//	labels(run_id, vertex, label)
//
// A run and its labels are written in one transaction. Open limits the pool
// to a single connection so ":memory:" databases are shared across calls and
// concurrent writers are serialized.
package store
