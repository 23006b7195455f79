// Package postgres implements the store interfaces on top of PostgreSQL.
//
// The uniqueness invariants the domain cares about (one active subscription
// per user, one membership per (playlist, song) pair, unique user emails)
// are backed by database constraints here, so a concurrent writer losing a
// race gets a typed duplicate error instead of silently corrupting state.
package postgres
