// Package postgres provides the PostgreSQL implementation of the store
// interfaces. Tasks live in a single table with a partial unique index on
// (user_id, title) WHERE NOT deleted, which is the authority for the
// duplicate-title rule enforced by the lifecycle service.
package postgres
