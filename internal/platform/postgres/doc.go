// Package postgres provides PostgreSQL implementations of the store
// interfaces, the mapping from PostgreSQL error codes to store errors, and
// the embedded goose migrations that create the schema.
//
// Stores accept a store.DBTX so they run equally against a *sql.DB or
// inside a caller-owned *sql.Tx.
package postgres
