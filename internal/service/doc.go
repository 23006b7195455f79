// Package service provides application-level services for subscriptions,
// playlists and the song catalog. Services orchestrate store operations,
// enforce cross-entity invariants and own the transaction boundaries; the
// HTTP layer above them holds no business logic.
package service
