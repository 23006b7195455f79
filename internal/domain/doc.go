// Package domain defines the core business entities of the music catalog:
// users, songs, subscriptions, playlists and playlist memberships.
//
// Entities hold plain foreign-key fields only; related records are looked up
// through the store on demand, never held as live object references.
// Constructors mint entity IDs and set creation timestamps and defaults
// explicitly, so the business layer owns these values rather than the
// storage layer.
package domain
