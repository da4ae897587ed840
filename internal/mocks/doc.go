// Package mocks provides centralized test doubles for the store and auth
// interfaces.
//
// MockUserStore and MockEventStore are working in-memory stores guarded by a
// mutex, suitable for handler tests that exercise several requests in a row.
// Each also exposes Fn fields and Err fields to force specific outcomes.
// TestifyMockEventStore is a testify/mock double for call-level expectations.
//
//	userStore := mocks.NewMockUserStore()
//	userStore.CreateError = errors.New("db down")
package mocks
