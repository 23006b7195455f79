// Package store defines the persistence interfaces the domain services and
// the report engine depend on, together with the sentinel errors all
// implementations surface and the transaction helper used for multi-step
// writes. The store is the sole source of truth; callers never cache entity
// state across calls.
package store
