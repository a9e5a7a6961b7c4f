// Package testdb provides test database utilities.
//
// # Isolation
//
// Each test gets its own namespace, removed again by Close:
//
//	tdb := testdb.New(t) // namespace: test_1739..._1
//	defer tdb.Close()
//
// # Environment
//
//	TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD
//
// Tests using New are skipped when the server cannot be reached.
package testdb
