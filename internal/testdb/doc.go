//go:build integration

// Package testdb provides helpers for integration tests that need a live
// PostgreSQL database.
//
// Each test runs inside a transaction that is rolled back when the test
// finishes, so tests can share one schema without cleaning up after
// themselves:
//
//	func TestEventRoundTrip(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        events := postgres.NewPostgresEventStore(tx, nil)
//	        // ...
//	    })
//	}
//
// Tests are skipped when neither DATABASE_URL nor PLAN_TEST_DB_URL is set.
package testdb
