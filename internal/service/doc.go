// Package service contains the task lifecycle service: the business
// operations over tasks, the invariants they enforce (ownership stamping,
// per-user unique titles, soft-delete semantics), and the classification of
// every failure into Conflict, NotFound, or Internal before it crosses the
// service boundary.
package service
