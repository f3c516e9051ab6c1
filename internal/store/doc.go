// Package store defines the persistence interfaces and shared error types
// used by the lifecycle service. Implementations live under
// internal/platform; the service layer depends only on these contracts.
package store
