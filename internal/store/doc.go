// Package store defines the persistence contracts for users, brands and
// cars, the sentinel errors their implementations return, and transaction
// helpers. Implementations live in internal/platform/postgres.
package store
