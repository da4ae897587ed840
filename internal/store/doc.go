// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the API layer, so handlers depend only on the operations they call
// and never on a particular database client.
package store
