// Package rowset executes parameterized queries over database/sql and materializes
// result rows lazily into typed values.
//
// Rows are pulled one by one. Connection, statement and cursor of a query are acquired
// on the first pull and released exactly once: after the last row, on Close or on failure.
// Optional identity cache makes repeated rows of the same entity return the same instance.
package rowset
